package aviso

import (
	"fmt"
	"time"
)

// Aviso is a league announcement shown on the public board.
type Aviso struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
}

func (a Aviso) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("aviso id is required")
	}
	if a.Title == "" {
		return fmt.Errorf("aviso title is required")
	}
	if a.Body == "" {
		return fmt.Errorf("aviso body is required")
	}

	return nil
}
