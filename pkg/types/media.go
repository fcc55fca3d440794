package types

import (
	"errors"
	"strings"
)

// Media kinds. A gallery entry is either a still image or a video.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// validMediaKinds is the set of recognized media kind values.
var validMediaKinds = map[string]bool{
	MediaImage: true,
	MediaVideo: true,
}

// BlobScheme prefixes content references that point into the local blob
// store rather than at a remote URL.
const BlobScheme = "blob:"

// MediaItem is one gallery entry. Content is always a durable reference:
// an http(s) URL or a "blob:<key>" reference into the media blob store.
// Transient session-local handles never reach the store; the editor
// normalizes uploads into blobs before submission.
type MediaItem struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

// ErrInvalidMediaKind reports an unrecognized media kind value.
var ErrInvalidMediaKind = errors.New("invalid media kind")

// Validate checks that the item carries a known kind and a non-empty
// content reference.
func (m MediaItem) Validate() error {
	if !validMediaKinds[m.Kind] {
		return ErrInvalidMediaKind
	}
	if m.Content == "" {
		return ErrInvalidData
	}
	return nil
}

// IsBlob reports whether the content points into the blob store.
func (m MediaItem) IsBlob() bool {
	return strings.HasPrefix(m.Content, BlobScheme)
}

// BlobKey returns the blob store key for a blob-backed item, or false for
// URL-backed items.
func (m MediaItem) BlobKey() (string, bool) {
	if !m.IsBlob() {
		return "", false
	}
	return strings.TrimPrefix(m.Content, BlobScheme), true
}

// IsEmbed reports whether a video item should render in an embedded player.
// Playback mode is selected by substring matching on the URL.
func (m MediaItem) IsEmbed() bool {
	if m.Kind != MediaVideo {
		return false
	}
	return strings.Contains(m.Content, "youtube.com") || strings.Contains(m.Content, "youtu.be")
}
