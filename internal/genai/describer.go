// Package genai generates short adoption-friendly cat descriptions from
// keywords through the Gemini REST API. It is a best-effort enhancement:
// failures map to user-facing Hebrew fallback strings and never block the
// CRUD flows.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shelterpaws/cattery/pkg/types"
)

// User-facing messages, surfaced verbatim by the UI.
const (
	MsgUnavailable = "שירות יצירת התיאור אינו זמין. אנא בדוק את מפתח ה-API."
	MsgFailed      = "אירעה שגיאה ביצירת התיאור. נסה שוב מאוחר יותר."
)

// ErrRemoteService reports a failed generation call: unset credentials,
// HTTP failure, or timeout.
var ErrRemoteService = errors.New("description service failed")

// defaultBaseURL is the Gemini API endpoint prefix.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// promptTemplate asks for a short, warm Hebrew adoption blurb built from
// the given keywords.
const promptTemplate = `צור תיאור קצר, חם ומזמין לאימוץ עבור חתול במקלט.
התיאור צריך להיות בעברית ולהתבסס על מילות המפתח הבאות.
הדגש את האישיות החיובית של החתול.
אורך התיאור: 2-3 משפטים.
מילות מפתח: "%s"`

// Describer calls the generation endpoint with a per-call timeout.
type Describer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewDescriber creates a describer from the genai config section.
// Timeout and model defaults come from Config.WithDefaults.
func NewDescriber(cfg types.GenAIConfig) *Describer {
	return &Describer{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Request/response wire forms for generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate returns a generated description for the keywords, or an error
// wrapping ErrRemoteService. Callers wanting the user-facing string use
// GenerateOrFallback.
func (d *Describer) Generate(ctx context.Context, keywords string) (string, error) {
	if d.apiKey == "" {
		return "", fmt.Errorf("%w: api key not set", ErrRemoteService)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, keywords)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", d.baseURL, d.model, d.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrRemoteService, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrRemoteService)
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrRemoteService)
	}
	return text, nil
}

// GenerateOrFallback returns the generated description, or the user-facing
// Hebrew message when the call fails. The failure is recoverable, never
// fatal.
func (d *Describer) GenerateOrFallback(ctx context.Context, keywords string) string {
	if d.apiKey == "" {
		return MsgUnavailable
	}
	text, err := d.Generate(ctx, keywords)
	if err != nil {
		return MsgFailed
	}
	return text
}
