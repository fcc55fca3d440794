package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shelterpaws/cattery/internal/blob"
	"github.com/shelterpaws/cattery/internal/metrics"
	"github.com/shelterpaws/cattery/pkg/types"
)

// User-facing validation messages, surfaced verbatim by the UI.
const (
	MsgMissingFields = "נא למלא את כל שדות החובה."
	MsgNoMedia       = "נא להוסיף לפחות קובץ מדיה אחד."
)

// ValidationError rejects a form submission before the store is touched.
// Message is the single user-facing string; Err carries the field-level
// sentinel for programmatic checks.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// MediaDraft is one gallery entry under edit. Exactly one of URL or Data
// is set: URL for an already-durable remote reference, Data for a pending
// local payload that Submit normalizes into the blob store.
type MediaDraft struct {
	Kind        string
	URL         string
	Data        []byte
	ContentType string
}

// Form collects and validates a single cat's fields for create or edit.
// An empty ID means create.
type Form struct {
	ID               string
	Name             string
	LocationID       string
	ShelterEntryYear int
	About            string

	media []MediaDraft
}

// NewForm returns a create-mode form with the documented defaults: the
// current year, the first non-wildcard location, empty text, empty media.
func NewForm(locations []types.Location) *Form {
	f := &Form{ShelterEntryYear: time.Now().Year()}
	if loc, ok := types.FirstStorable(locations); ok {
		f.LocationID = loc.ID
	}
	return f
}

// EditForm returns an edit-mode form pre-populated from the record. The
// record's media items become URL drafts; the record itself stays
// untouched until Submit.
func EditForm(cat *types.Cat) *Form {
	f := &Form{
		ID:               cat.ID,
		Name:             cat.Name,
		LocationID:       cat.LocationID,
		ShelterEntryYear: cat.Description.ShelterEntryYear,
		About:            cat.Description.About,
	}
	for _, item := range cat.Media {
		f.media = append(f.media, MediaDraft{Kind: item.Kind, URL: item.Content})
	}
	return f
}

// Media returns the current draft sequence in gallery order.
func (f *Form) Media() []MediaDraft { return f.media }

// AttachURL appends a remote media reference to the end of the gallery.
func (f *Form) AttachURL(kind, url string) {
	f.media = append(f.media, MediaDraft{Kind: kind, URL: url})
}

// AttachUpload appends a pending local payload to the end of the gallery.
// The kind is derived from the MIME type when not given.
func (f *Form) AttachUpload(data []byte, contentType string) {
	kind := types.MediaImage
	if strings.HasPrefix(contentType, "video") {
		kind = types.MediaVideo
	}
	f.media = append(f.media, MediaDraft{Kind: kind, Data: data, ContentType: contentType})
}

// RemoveMedia splices the draft at index i out of the gallery, preserving
// the relative order of the rest. Out-of-range indexes are ignored.
func (f *Form) RemoveMedia(i int) {
	if i < 0 || i >= len(f.media) {
		return
	}
	f.media = append(f.media[:i], f.media[i+1:]...)
}

// Validate checks every required field. On failure it returns a
// ValidationError with the single user-facing message; the store must not
// be called.
func (f *Form) Validate(locations []types.Location) *ValidationError {
	if f.Name == "" {
		return &ValidationError{Message: MsgMissingFields, Err: types.ErrInvalidName}
	}
	if !types.KnownLocation(locations, f.LocationID) {
		return &ValidationError{Message: MsgMissingFields, Err: types.ErrInvalidLocation}
	}
	if f.ShelterEntryYear == 0 {
		return &ValidationError{Message: MsgMissingFields, Err: types.ErrInvalidYear}
	}
	if f.About == "" {
		return &ValidationError{Message: MsgMissingFields, Err: types.ErrInvalidAbout}
	}
	if len(f.media) == 0 {
		return &ValidationError{Message: MsgNoMedia, Err: types.ErrNoMedia}
	}
	return nil
}

// Submit validates the form, normalizes pending uploads into the blob
// store, and inserts or updates the record. The returned cat is the stored
// form, ID minted on create.
func (s *Service) Submit(ctx context.Context, f *Form) (*types.Cat, error) {
	if verr := f.Validate(s.cfg.Locations); verr != nil {
		return nil, verr
	}

	media, err := s.normalizeMedia(ctx, f.media)
	if err != nil {
		return nil, err
	}

	cat := &types.Cat{
		ID:         f.ID,
		Name:       f.Name,
		LocationID: f.LocationID,
		Description: types.Description{
			ShelterEntryYear: f.ShelterEntryYear,
			About:            f.About,
		},
		Media: media,
	}

	if f.ID == "" {
		err = s.store.Insert(ctx, cat)
		metrics.ObserveOp("insert", err)
	} else {
		err = s.store.Update(ctx, cat)
		metrics.ObserveOp("update", err)
	}
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// normalizeMedia turns every draft into a durable reference. Pending local
// payloads become content-addressed blobs; a payload whose key already
// exists is deduplicated against the stored copy. Draft payloads are
// released after normalization so the bytes are held exactly once.
func (s *Service) normalizeMedia(ctx context.Context, drafts []MediaDraft) ([]types.MediaItem, error) {
	media := make([]types.MediaItem, 0, len(drafts))
	for i := range drafts {
		draft := &drafts[i]
		switch {
		case draft.Data != nil:
			key := blob.ContentKey(draft.Data)
			_, err := s.blobs.Put(ctx, key, bytes.NewReader(draft.Data), blob.PutOptions{ContentType: draft.ContentType})
			if err != nil && !errors.Is(err, blob.ErrExists) {
				return nil, fmt.Errorf("storing media payload: %w", err)
			}
			if err == nil {
				metrics.BlobBytesWritten.Add(float64(len(draft.Data)))
			}
			media = append(media, types.MediaItem{Kind: draft.Kind, Content: types.BlobScheme + key})
			draft.Data = nil
		case draft.URL != "":
			media = append(media, types.MediaItem{Kind: draft.Kind, Content: draft.URL})
		default:
			return nil, fmt.Errorf("media draft %d: %w", i, types.ErrInvalidData)
		}
	}
	return media, nil
}
