// Package flavor talks to the text-generation collaborator that writes the
// pet's short reaction and greeting lines. The client returns errors; the
// game layer is responsible for substituting fallback lines, so a dead or
// misconfigured generator can never block a state transition.
package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"habithatch/internal/game"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-flash-lite-latest"
)

// GeminiClient speaks the generateContent API with plain JSON POSTs.
type GeminiClient struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type GeminiConfig struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &GeminiClient{
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default().With("component", "flavor"),
	}
}

func (c *GeminiClient) ReactionFor(ctx context.Context, habitName, petName string, stage game.PetStage, streak int) (string, error) {
	prompt := fmt.Sprintf(`You are a virtual pet named %s. You are currently at the %s stage of evolution.
The user just completed the habit: %q.
The user has a streak of %d days.

Give a very short, enthusiastic, and cute reaction (max 15 words).
If you are an Egg, say something like "Wiggle wiggle!".
If you are a Baby, speak in simple cute words.
If you are an Adult, be proud and encouraging.
Use an emoji relevant to the habit if possible.`, petName, stage, habitName, streak)
	return c.generate(ctx, prompt)
}

func (c *GeminiClient) GreetingFor(ctx context.Context, petName string, stage game.PetStage, timeOfDay game.TimeOfDay) (string, error) {
	prompt := fmt.Sprintf(`You are a virtual pet named %s at %s stage.
It is %s.
Greet the user briefly and ask them to do their habits (max 12 words).`, petName, stage, timeOfDay)
	return c.generate(ctx, prompt)
}

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
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("flavor: missing API key")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("generation request failed", "err", err)
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("generation request rejected", "status", resp.StatusCode)
		return "", fmt.Errorf("flavor: status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("flavor: api error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	for _, cand := range parsed.Candidates {
		for _, p := range cand.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("flavor: empty response")
}
