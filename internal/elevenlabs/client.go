// Package elevenlabs is a minimal client for the ElevenLabs voice API.
package elevenlabs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"voicedesk.app/api-server/internal/model"
)

const DefaultBaseURL = "https://api.elevenlabs.io/v1"

const tracerName = "elevenlabs"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient builds an ElevenLabs client. The API key is required; a missing
// key is a configuration error, not a silent default.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("elevenlabs API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tracer: otel.Tracer(tracerName),
	}, nil
}

// voicePayload is the upstream wire shape. Only the fields we mirror are kept.
type voicePayload struct {
	VoiceID     string            `json:"voice_id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Labels      map[string]string `json:"labels"`
}

// ListVoices fetches the full voice catalog.
func (c *Client) ListVoices(ctx context.Context) ([]model.Voice, error) {
	var resp struct {
		Voices []voicePayload `json:"voices"`
	}
	if err := c.get(ctx, "/voices", &resp); err != nil {
		return nil, err
	}

	voices := make([]model.Voice, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		voices = append(voices, toVoiceModel(v))
	}
	return voices, nil
}

// GetVoice fetches a single voice by ID. Returns store-style ErrNotFound
// semantics via a plain error; callers treat any failure as upstream failure.
func (c *Client) GetVoice(ctx context.Context, voiceID string) (*model.Voice, error) {
	var payload voicePayload
	if err := c.get(ctx, "/voices/"+voiceID, &payload); err != nil {
		return nil, err
	}
	voice := toVoiceModel(payload)
	return &voice, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	ctx, span := c.tracer.Start(ctx, "elevenlabs.get "+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling elevenlabs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("elevenlabs API error: %d - %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding elevenlabs response: %w", err)
	}
	return nil
}

func toVoiceModel(v voicePayload) model.Voice {
	voice := model.Voice{
		ID:   v.VoiceID,
		Name: v.Name,
	}
	// Upstream labels carry language or accent, never both reliably.
	if lang, ok := v.Labels["language"]; ok && lang != "" {
		voice.Language = &lang
	} else if accent, ok := v.Labels["accent"]; ok && accent != "" {
		voice.Language = &accent
	}
	if v.Category != "" {
		voice.Category = &v.Category
	}
	if v.Description != "" {
		voice.Description = &v.Description
	}
	return voice
}
