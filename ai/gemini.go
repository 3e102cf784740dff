// Package ai wraps the Gemini REST API for the small set of assist
// features the admin panel offers: product copywriting, report insights
// and product image generation.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	textModel      = "gemini-1.5-flash"
	imageModel     = "gemini-2.0-flash-preview-image-generation"
)

// ErrNotConfigured is returned when no API key is set. Callers degrade
// gracefully: the store works without the assist features.
var ErrNotConfigured = errors.New("gemini api key not configured")

// Client calls the Gemini generateContent endpoint.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Gemini client. An empty key yields a client whose
// calls all return ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether the client has an API key.
func (c *Client) Enabled() bool {
	return c.APIKey != ""
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
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

// GenerateProductDescription writes a bilingual product description from
// the product name and keywords. The response is plain text in the
// requested language ("en" or "ar").
func (c *Client) GenerateProductDescription(ctx context.Context, name string, keywords []string, lang string) (string, error) {
	language := "English"
	if lang == "ar" {
		language = "Arabic"
	}
	prompt := fmt.Sprintf(
		"Write a short, appealing e-commerce product description in %s for a gadget called %q. "+
			"Work in these keywords where natural: %s. "+
			"Two to three sentences, no headings, no markdown.",
		language, name, strings.Join(keywords, ", "))
	return c.generateText(ctx, prompt)
}

// GenerateInsights summarizes a monthly sales report into a few
// actionable observations for the store owner.
func (c *Client) GenerateInsights(ctx context.Context, reportSummary string) (string, error) {
	prompt := "You are a retail analyst for a small Algerian online gadget store. " +
		"Given this monthly report, list the three most useful observations and " +
		"one concrete suggestion, in short plain sentences:\n\n" + reportSummary
	return c.generateText(ctx, prompt)
}

// GenerateImage produces a product image from a text prompt and returns
// it as a base64 data URL, ready to store in an image field.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, imageModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	})
	if err != nil {
		return "", err
	}
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:" + p.InlineData.MimeType + ";base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", errors.New("gemini returned no image data")
}

func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, textModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				return strings.TrimSpace(p.Text), nil
			}
		}
	}
	return "", errors.New("gemini returned no text")
}

func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (*generateResponse, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gemini: unexpected response (status %d)", httpResp.StatusCode)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("gemini: %s (code %d)", resp.Error.Message, resp.Error.Code)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: unexpected status %d", httpResp.StatusCode)
	}
	return &resp, nil
}
