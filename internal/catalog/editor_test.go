package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterpaws/cattery/pkg/types"
)

func validForm() *Form {
	f := NewForm(types.DefaultLocations)
	f.Name = "מרשל"
	f.About = "חתול ידידותי."
	f.AttachURL(types.MediaImage, "https://example.org/marshal.jpg")
	return f
}

func TestNewFormDefaults(t *testing.T) {
	f := NewForm(types.DefaultLocations)
	assert.Empty(t, f.ID)
	assert.Equal(t, time.Now().Year(), f.ShelterEntryYear)
	assert.Equal(t, "1", f.LocationID, "create mode defaults to the first non-wildcard location")
	assert.Empty(t, f.Name)
	assert.Empty(t, f.About)
	assert.Empty(t, f.Media())
}

func TestEditFormPrepopulates(t *testing.T) {
	cat := &types.Cat{
		ID:         "c7",
		Name:       "לולה",
		LocationID: "3",
		Description: types.Description{
			ShelterEntryYear: 2021,
			About:            "שקטה מאוד.",
		},
		Media: []types.MediaItem{
			{Kind: types.MediaImage, Content: "https://example.org/a.jpg"},
			{Kind: types.MediaVideo, Content: "https://youtu.be/xyz"},
		},
	}

	f := EditForm(cat)
	assert.Equal(t, "c7", f.ID)
	assert.Equal(t, "לולה", f.Name)
	assert.Equal(t, 2021, f.ShelterEntryYear)
	require.Len(t, f.Media(), 2)
	assert.Equal(t, "https://example.org/a.jpg", f.Media()[0].URL)
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr error
		wantMsg string
	}{
		{"valid form", func(f *Form) {}, nil, ""},
		{"empty name", func(f *Form) { f.Name = "" }, types.ErrInvalidName, MsgMissingFields},
		{"wildcard location", func(f *Form) { f.LocationID = types.LocationAll }, types.ErrInvalidLocation, MsgMissingFields},
		{"unknown location", func(f *Form) { f.LocationID = "99" }, types.ErrInvalidLocation, MsgMissingFields},
		{"missing year", func(f *Form) { f.ShelterEntryYear = 0 }, types.ErrInvalidYear, MsgMissingFields},
		{"empty about", func(f *Form) { f.About = "" }, types.ErrInvalidAbout, MsgMissingFields},
		{"no media", func(f *Form) { f.RemoveMedia(0) }, types.ErrNoMedia, MsgNoMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(f)
			verr := f.Validate(types.DefaultLocations)
			if tt.wantErr == nil {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.ErrorIs(t, verr, tt.wantErr)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestFormMediaSequence(t *testing.T) {
	f := NewForm(types.DefaultLocations)
	f.AttachURL(types.MediaImage, "https://example.org/a.jpg")
	f.AttachUpload([]byte("payload"), "video/mp4")
	f.AttachURL(types.MediaImage, "https://example.org/b.jpg")

	// Uploads append to the end; kind derives from the MIME type.
	require.Len(t, f.Media(), 3)
	assert.Equal(t, types.MediaVideo, f.Media()[1].Kind)

	// Removal splices a single element, preserving relative order.
	f.RemoveMedia(1)
	require.Len(t, f.Media(), 2)
	assert.Equal(t, "https://example.org/a.jpg", f.Media()[0].URL)
	assert.Equal(t, "https://example.org/b.jpg", f.Media()[1].URL)

	// Out-of-range removals are ignored.
	f.RemoveMedia(-1)
	f.RemoveMedia(5)
	assert.Len(t, f.Media(), 2)
}

func TestSubmitCreateMintsIDAndStores(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	f := validForm()
	cat, err := svc.Submit(ctx, f)
	require.NoError(t, err)
	assert.NotEmpty(t, cat.ID)

	got, err := svc.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "מרשל", got.Name)
}

func TestSubmitValidationNeverTouchesStore(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	f := validForm()
	f.About = ""
	_, err := svc.Submit(ctx, f)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgMissingFields, verr.Message)

	cats, err := svc.store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats, "a rejected submission must not reach the store")
}

func TestSubmitNormalizesUploadsIntoBlobs(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	f := validForm()
	f.AttachUpload([]byte("fake mp4 bytes"), "video/mp4")

	cat, err := svc.Submit(ctx, f)
	require.NoError(t, err)
	require.Len(t, cat.Media, 2)

	item := cat.Media[1]
	assert.True(t, item.IsBlob(), "uploads become blob references, never transient handles")
	key, ok := item.BlobKey()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(key, "media/"))

	// The payload is durably readable through the blob store.
	info, rc, err := svc.Blobs().Get(ctx, key)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "video/mp4", info.ContentType)

	// The draft payload was released after normalization.
	assert.Nil(t, f.Media()[1].Data)
}

func TestSubmitDeduplicatesIdenticalUploads(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	payload := []byte("same bytes twice")

	first := validForm()
	first.AttachUpload(payload, "image/jpeg")
	_, err := svc.Submit(ctx, first)
	require.NoError(t, err)

	second := validForm()
	second.Name = "לולה"
	second.AttachUpload(payload, "image/jpeg")
	cat, err := svc.Submit(ctx, second)
	require.NoError(t, err, "an already-stored payload deduplicates instead of failing")

	key, ok := cat.Media[1].BlobKey()
	require.True(t, ok)
	_, err = svc.Blobs().Head(ctx, key)
	assert.NoError(t, err)
}

func TestSubmitEditReplacesRecord(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)

	f := EditForm(created)
	f.Name = "מרשל המעודכן"
	f.LocationID = "5"
	updated, err := svc.Submit(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "update never changes the id")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "מרשל המעודכן", got.Name)
	assert.Equal(t, "5", got.LocationID)
}
