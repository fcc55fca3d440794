package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/shelterpaws/cattery/pkg/types"
)

func sampleCat() *types.Cat {
	return &types.Cat{
		Name:       "מרשל",
		LocationID: "1",
		Description: types.Description{
			ShelterEntryYear: 2023,
			About:            "חתול ג'ינג'י וידידותי שאוהב להתפנק בשמש.",
		},
		Media: []types.MediaItem{
			{Kind: types.MediaImage, Content: "https://picsum.photos/seed/marshal/400/300"},
			{Kind: types.MediaVideo, Content: "https://youtu.be/xyz"},
		},
	}
}

func attachedBackend(t *testing.T) (*Backend, string) {
	t.Helper()
	tmpDir := t.TempDir()
	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b, tmpDir
}

func TestInsertAndGetRoundTrip(t *testing.T) {
	b, _ := attachedBackend(t)
	ctx := context.Background()

	cat := sampleCat()
	if err := b.Insert(ctx, cat); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if cat.ID == "" {
		t.Fatal("Insert did not mint an ID")
	}

	got, err := b.Get(ctx, cat.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != cat.Name || got.LocationID != cat.LocationID {
		t.Errorf("round trip changed fields: got %+v", got)
	}
	if got.Description != cat.Description {
		t.Errorf("description mismatch: got %+v want %+v", got.Description, cat.Description)
	}
	if len(got.Media) != 2 {
		t.Fatalf("expected 2 media items, got %d", len(got.Media))
	}
	for i := range cat.Media {
		if got.Media[i] != cat.Media[i] {
			t.Errorf("media[%d] mismatch: got %+v want %+v", i, got.Media[i], cat.Media[i])
		}
	}
	if !got.CreatedAt.Equal(cat.CreatedAt) {
		t.Errorf("created_at changed across round trip")
	}
}

func TestInsertDuplicateID(t *testing.T) {
	b, _ := attachedBackend(t)
	ctx := context.Background()

	cat := sampleCat()
	cat.ID = "c1"
	if err := b.Insert(ctx, cat); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	dup := sampleCat()
	dup.ID = "c1"
	err := b.Insert(ctx, dup)
	if !errors.Is(err, types.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestUpdateReplacesAllFieldsButID(t *testing.T) {
	b, _ := attachedBackend(t)
	ctx := context.Background()

	cat := sampleCat()
	if err := b.Insert(ctx, cat); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	edited := cat.Clone()
	edited.Name = "לולה"
	edited.LocationID = "3"
	edited.Description.About = "חתולה שקטה."
	edited.Media = []types.MediaItem{
		{Kind: types.MediaImage, Content: "blob:media/abc"},
	}
	if err := b.Update(ctx, edited); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := b.Get(ctx, cat.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != cat.ID {
		t.Errorf("update changed the ID: %q -> %q", cat.ID, got.ID)
	}
	if got.Name != "לולה" || got.LocationID != "3" {
		t.Errorf("update did not replace fields: %+v", got)
	}
	if len(got.Media) != 1 || got.Media[0].Content != "blob:media/abc" {
		t.Errorf("update did not replace media: %+v", got.Media)
	}
}

func TestUpdateWritesBackStoredCreatedAt(t *testing.T) {
	b, _ := attachedBackend(t)
	ctx := context.Background()

	cat := sampleCat()
	if err := b.Insert(ctx, cat); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// An edit built from scratch carries no creation time of its own.
	edited := sampleCat()
	edited.ID = cat.ID
	edited.Name = "לולה"
	if !edited.CreatedAt.IsZero() {
		t.Fatal("fixture should start with a zero CreatedAt")
	}

	if err := b.Update(ctx, edited); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if edited.CreatedAt.IsZero() {
		t.Error("Update left CreatedAt zero on the caller's struct")
	}

	got, err := b.Get(ctx, cat.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !edited.CreatedAt.Equal(got.CreatedAt) {
		t.Errorf("CreatedAt mismatch: updated struct %v, stored %v", edited.CreatedAt, got.CreatedAt)
	}
	if !got.CreatedAt.Equal(cat.CreatedAt) {
		t.Errorf("update changed the stored creation time: %v -> %v", cat.CreatedAt, got.CreatedAt)
	}
}

func TestUpdateMissingCat(t *testing.T) {
	b, _ := attachedBackend(t)

	cat := sampleCat()
	cat.ID = "no-such-cat"
	err := b.Update(context.Background(), cat)
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	b, _ := attachedBackend(t)
	ctx := context.Background()

	cat := sampleCat()
	if err := b.Insert(ctx, cat); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := b.Delete(ctx, cat.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := b.Get(ctx, cat.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing ID is a documented no-op.
	if err := b.Delete(ctx, cat.ID); err != nil {
		t.Errorf("second Delete should be a no-op, got %v", err)
	}
	if err := b.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete of unknown ID should be a no-op, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	b, _ := attachedBackend(t)
	ctx := context.Background()

	first := sampleCat()
	if err := b.Insert(ctx, first); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	second := sampleCat()
	second.Name = "לולה"
	if err := b.Insert(ctx, second); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	cats, err := b.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 cats, got %d", len(cats))
	}
	if cats[0].ID != second.ID {
		t.Errorf("expected newest cat first, got %q", cats[0].Name)
	}
}

func TestMutationsSurviveReattach(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	cat := sampleCat()
	if err := b.Insert(ctx, cat); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// A fresh backend over the same data dir observes the mutation.
	b2 := NewBackend()
	if err := b2.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	got, err := b2.Get(ctx, cat.ID)
	if err != nil {
		t.Fatalf("Get after reattach failed: %v", err)
	}
	if got.Name != cat.Name {
		t.Errorf("record changed across restart: %+v", got)
	}
	if len(got.Media) != len(cat.Media) {
		t.Fatalf("media lost across restart: got %d items", len(got.Media))
	}
	for i := range cat.Media {
		if got.Media[i] != cat.Media[i] {
			t.Errorf("media order broke across restart at %d: %+v", i, got.Media[i])
		}
	}
}
