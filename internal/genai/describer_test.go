package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterpaws/cattery/pkg/types"
)

func testDescriber(t *testing.T, handler http.HandlerFunc) *Describer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	d := NewDescriber(types.GenAIConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		Timeout: 5 * time.Second,
	})
	d.baseURL = server.URL
	return d
}

func candidateBody(text string) []byte {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return body
}

func TestGenerateSendsKeywordsInPrompt(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	d := testDescriber(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write(candidateBody("  מרשל הוא חתול חברותי ומלא אנרגיה.  "))
	})

	text, err := d.Generate(context.Background(), "חברותי, אנרגטי")
	require.NoError(t, err)
	assert.Equal(t, "מרשל הוא חתול חברותי ומלא אנרגיה.", text)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	assert.Contains(t, gotReq.Contents[0].Parts[0].Text, "חברותי, אנרגטי")
}

func TestGenerateWithoutKey(t *testing.T) {
	d := NewDescriber(types.GenAIConfig{Model: "gemini-2.5-flash", Timeout: time.Second})

	_, err := d.Generate(context.Background(), "שובב")
	assert.ErrorIs(t, err, ErrRemoteService)
}

func TestGenerateRemoteFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"server error",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			"malformed body",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			"no candidates",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			"blank text",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write(candidateBody("   "))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDescriber(t, tt.handler)
			_, err := d.Generate(context.Background(), "שקט")
			assert.ErrorIs(t, err, ErrRemoteService)
		})
	}
}

func TestGenerateOrFallback(t *testing.T) {
	t.Run("success passes text through", func(t *testing.T) {
		d := testDescriber(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write(candidateBody("חתולה עדינה ואוהבת ליטופים."))
		})
		got := d.GenerateOrFallback(context.Background(), "עדינה")
		assert.Equal(t, "חתולה עדינה ואוהבת ליטופים.", got)
	})

	t.Run("missing key", func(t *testing.T) {
		d := NewDescriber(types.GenAIConfig{Model: "gemini-2.5-flash", Timeout: time.Second})
		assert.Equal(t, MsgUnavailable, d.GenerateOrFallback(context.Background(), "עדינה"))
	})

	t.Run("remote failure", func(t *testing.T) {
		d := testDescriber(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		assert.Equal(t, MsgFailed, d.GenerateOrFallback(context.Background(), "עדינה"))
	})
}

func TestGenerateHonorsContext(t *testing.T) {
	d := testDescriber(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := d.Generate(ctx, "סבלני")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteService)
	assert.True(t, strings.Contains(err.Error(), "context") || strings.Contains(err.Error(), "deadline"))
}
