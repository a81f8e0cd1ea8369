package album

import (
	"fmt"
	"time"
)

// Photo is one stored gallery image. Path locates the object in storage,
// URL is the public address handed to clients.
type Photo struct {
	URL  string
	Path string
}

// Album is a titled group of gallery photos.
type Album struct {
	ID        string
	Title     string
	Photos    []Photo
	CreatedAt time.Time
}

func (a Album) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("album id is required")
	}
	if a.Title == "" {
		return fmt.Errorf("album title is required")
	}

	return nil
}
