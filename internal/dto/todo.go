package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// When parses time from JSON as either date-only ("2006-01-02") or RFC3339.
// Absent or null means "use creation time".
type When struct{ t *time.Time }

func (w *When) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		w.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			w.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("time: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Time returns the parsed value, or the zero time when absent.
func (w When) Time() time.Time {
	if w.t == nil {
		return time.Time{}
	}
	return *w.t
}

type CreateTodoRequest struct {
	Text      string `json:"text" binding:"required,min=1"`
	Completed bool   `json:"completed"`
	Time      When   `json:"time"` // optional: "2026-02-19" or RFC3339
}

type TodoResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Time      time.Time `json:"time"`
}
