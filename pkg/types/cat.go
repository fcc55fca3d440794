package types

import (
	"errors"
	"time"
)

// Description holds the free-text profile attached to a cat.
type Description struct {
	ShelterEntryYear int    `json:"shelter_entry_year"`
	About            string `json:"about"`
}

// Cat is a single shelter resident's full profile. The ID is assigned on
// creation and immutable afterwards; every other field is replaceable
// through Store.Update.
type Cat struct {
	ID          string      `json:"cat_id"`
	Name        string      `json:"name"`
	LocationID  string      `json:"location_id"`
	Description Description `json:"description"`
	Media       []MediaItem `json:"media"` // gallery order; first item is the thumbnail
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Entity validation errors.
var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidLocation = errors.New("unknown or missing location")
	ErrInvalidYear     = errors.New("shelter entry year must be set")
	ErrInvalidAbout    = errors.New("about text must not be empty")
	ErrNoMedia         = errors.New("media must contain at least one item")
)

// Thumbnail returns the first media item, or false when the cat has none.
// The store tolerates media-less cats (pre-seeded data); display layers
// fall back to a placeholder.
func (c *Cat) Thumbnail() (MediaItem, bool) {
	if len(c.Media) == 0 {
		return MediaItem{}, false
	}
	return c.Media[0], true
}

// Clone returns a deep copy. Views and editors work on copies so that the
// store remains the single source of truth.
func (c *Cat) Clone() *Cat {
	cp := *c
	if c.Media != nil {
		cp.Media = make([]MediaItem, len(c.Media))
		copy(cp.Media, c.Media)
	}
	return &cp
}
