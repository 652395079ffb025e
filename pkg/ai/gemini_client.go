// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type GeminiOptions struct {
	APIKey string
	Model  string

	// StructuredOutput asks the API for application/json constrained to the
	// plant record schema instead of free text.
	StructuredOutput bool
}

type gemini struct {
	models *genai.Models
	model  string
	config *genai.GenerateContentConfig
}

func NewGemini(ctx context.Context, opts GeminiOptions) (Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	var cfg *genai.GenerateContentConfig
	if opts.StructuredOutput {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   PlantRecordSchema(),
		}
	}
	return &gemini{models: client.Models, model: opts.Model, config: cfg}, nil
}

func (g *gemini) Name() string { return "gemini:" + g.model }

func (g *gemini) Generate(ctx context.Context, prompt string, img InlineImage) (string, error) {
	data, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return "", fmt.Errorf("gemini: decode image payload: %w", err)
	}
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(data, img.MIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, g.config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

// PlantRecordSchema mirrors entities.PlantRecord for structured output.
func PlantRecordSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
	list := func() *genai.Schema { return &genai.Schema{Type: genai.TypeArray, Items: str()} }
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           str(),
			"scientificName": str(),
			"family":         str(),
			"description":    str(),
			"care": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"sunlight":    str(),
					"water":       str(),
					"temperature": str(),
					"humidity":    str(),
				},
				Required: []string{"sunlight", "water", "temperature", "humidity"},
			},
			"nativeRegion": str(),
			"uses":         list(),
			"funFacts":     list(),
		},
		Required: []string{"name", "scientificName", "family", "description", "care", "nativeRegion", "uses", "funFacts"},
		PropertyOrdering: []string{
			"name", "scientificName", "family", "description", "care", "nativeRegion", "uses", "funFacts",
		},
	}
}
