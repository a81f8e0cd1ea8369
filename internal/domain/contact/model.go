package contact

import (
	"fmt"
	"time"
)

// Message is a submission from the public contact form.
type Message struct {
	ID        string
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}

func (m Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("contact message id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("contact name is required")
	}
	if m.Email == "" {
		return fmt.Errorf("contact email is required")
	}
	if m.Body == "" {
		return fmt.Errorf("contact body is required")
	}

	return nil
}
