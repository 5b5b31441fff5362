package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Captioner describes a photo in prose for diary context.
type Captioner interface {
	Caption(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}

// GeminiCaptioner sends the image inline to the Gemini generateContent API.
type GeminiCaptioner struct {
	ApiKey    string
	ModelName string
	Client    *http.Client
}

var _ Captioner = &GeminiCaptioner{}

func NewGeminiCaptioner(apiKey, modelName string) *GeminiCaptioner {
	return &GeminiCaptioner{
		ApiKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiVisionPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiVisionContent struct {
	Parts []*geminiVisionPart `json:"parts"`
	Role  string              `json:"role"`
}

type geminiVisionRequest struct {
	Contents []*geminiVisionContent `json:"contents"`
}

type geminiVisionResponse struct {
	Candidates []*struct {
		Content *struct {
			Parts []*struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiCaptioner) Caption(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	payload := geminiVisionRequest{
		Contents: []*geminiVisionContent{
			{
				Parts: []*geminiVisionPart{
					{Text: prompt},
					{InlineData: &geminiInlineData{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(imageData),
					}},
				},
				Role: "user",
			},
		},
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent", g.ModelName)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", g.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini vision request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var visionRes geminiVisionResponse
	if err := json.Unmarshal(resBody, &visionRes); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(visionRes.Candidates) == 0 ||
		visionRes.Candidates[0].Content == nil ||
		len(visionRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini vision returned no candidates")
	}

	return strings.TrimSpace(visionRes.Candidates[0].Content.Parts[0].Text), nil
}
