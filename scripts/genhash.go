// One-off: go run scripts/genhash.go [password]
package main

import (
	"fmt"
	"os"

	"github.com/aubertlenno/Todo-Backend/internal/password"
)

func main() {
	pw := "admin"
	if len(os.Args) > 1 {
		pw = os.Args[1]
	}
	h, err := password.NewHasher(0).Hash(pw)
	if err != nil {
		panic(err)
	}
	fmt.Print(h)
}
