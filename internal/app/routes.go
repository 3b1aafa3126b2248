package app

import (
	"github.com/aubertlenno/Todo-Backend/internal/auth"
	"github.com/aubertlenno/Todo-Backend/internal/cache"
	"github.com/aubertlenno/Todo-Backend/internal/config"
	"github.com/aubertlenno/Todo-Backend/internal/handlers"
	"github.com/aubertlenno/Todo-Backend/internal/password"
	"github.com/aubertlenno/Todo-Backend/internal/repo"
	"github.com/aubertlenno/Todo-Backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup registers all routes on the given engine. rdb may be nil, which
// disables the todo list cache.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) error {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	issuer, err := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration())
	if err != nil {
		return err
	}

	hasher := password.NewHasher(0)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo, hasher)
	authHandler := handlers.NewAuthHandler(issuer, userSvc)
	registerAuthRoutes(r, authHandler)

	protected := r.Group("", auth.RequireAuth(issuer, userSvc))
	protected.GET("/protected", authHandler.Protected)

	todoRepo := repo.NewPGTodoRepo(db)
	var todoCache *cache.TodoCache
	if rdb != nil {
		todoCache = cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	todoSvc := service.NewTodoService(todoRepo, todoCache)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	registerTodoRoutes(protected, todoHandler)

	return nil
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func registerTodoRoutes(g *gin.RouterGroup, h *handlers.TodoHandler) {
	g.POST("/todos/", h.Create)
	g.GET("/todos/", h.List)
	g.GET("/todos/:id", h.GetByID)
	g.PUT("/todos/:id/update_text/", h.UpdateText)
	g.PUT("/todos/:id/update_status/", h.UpdateStatus)
	g.DELETE("/todos/:id", h.Delete)
	g.DELETE("/todos/text/:text", h.DeleteByText)
	g.DELETE("/todos/", h.DeleteAll)
}

func registerAuthRoutes(r *gin.Engine, h *handlers.AuthHandler) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
}
