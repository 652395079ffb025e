package serviceImp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"plantscan/entities"
	"plantscan/pkg/ai"
	"plantscan/pkg/identify/service"
	"plantscan/pkg/logger"
)

// The model is always told the image is a JPEG, whatever was uploaded.
const imageMIMEType = "image/jpeg"

const identifyPrompt = `
Analyze this plant image and provide detailed information in the following JSON format:
{
  "name": "Common name of the plant",
  "scientificName": "Scientific name",
  "family": "Plant family",
  "description": "Detailed description of the plant (2-3 sentences)",
  "care": {
    "sunlight": "Sunlight requirements",
    "water": "Watering needs",
    "temperature": "Temperature range",
    "humidity": "Humidity preferences"
  },
  "nativeRegion": "Where the plant naturally grows",
  "uses": ["use1", "use2", "use3"],
  "funFacts": ["fact1", "fact2", "fact3"]
}

Please provide accurate and helpful information about this plant. If you cannot identify the plant with confidence, provide your best guess but mention the uncertainty in the description.
`

type IdentifySvc struct {
	llm      ai.Client
	strict   bool
	validate *validator.Validate
	log      *logrus.Entry
}

// NewIdentifyService builds the gateway. With strict set, records missing
// a name, scientific name or any care field are rejected.
func NewIdentifyService(llm ai.Client, strict bool) *IdentifySvc {
	return &IdentifySvc{
		llm:      llm,
		strict:   strict,
		validate: validator.New(),
		log:      logger.For("identify").WithField("model", llm.Name()),
	}
}

var _ service.IdentifyService = (*IdentifySvc)(nil)

func (s *IdentifySvc) Identify(ctx context.Context, imageDataURI string) (json.RawMessage, error) {
	if strings.TrimSpace(imageDataURI) == "" {
		return nil, service.ErrMissingImage
	}
	payload, err := StripDataURI(imageDataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrIdentificationFailed, err)
	}

	s.log.WithField("payload_bytes", len(payload)).Debug("calling model")
	text, err := s.llm.Generate(ctx, identifyPrompt, ai.InlineImage{MIMEType: imageMIMEType, Data: payload})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrIdentificationFailed, err)
	}

	raw, err := ParseRecord(text)
	if err != nil {
		s.log.WithField("response_len", len(text)).WithError(err).Warn("unusable model response")
		return nil, err
	}
	if s.strict {
		if err := s.check(raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// check decodes raw into a PlantRecord and requires its mandatory fields.
func (s *IdentifySvc) check(raw json.RawMessage) error {
	var rec entities.PlantRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidRecord, err)
	}
	if err := s.validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidRecord, err)
	}
	return nil
}

// StripDataURI drops everything up to and including the first comma.
func StripDataURI(dataURI string) (string, error) {
	_, payload, ok := strings.Cut(dataURI, ",")
	if !ok {
		return "", service.ErrMalformedDataURI
	}
	return payload, nil
}

// ExtractJSON returns the span from the first '{' to the last '}'.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", service.ErrInvalidResponseFormat
	}
	return text[start : end+1], nil
}

// ParseRecord extracts the plant record embedded in model text. Only JSON
// syntax is checked; field types and unknown keys pass through untouched.
func ParseRecord(text string) (json.RawMessage, error) {
	span, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(span)); err != nil {
		return nil, fmt.Errorf("parse plant record: %w", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}
