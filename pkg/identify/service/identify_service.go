package service

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrMissingImage          = errors.New("no image provided")
	ErrMalformedDataURI      = errors.New("image is not a data URI")
	ErrInvalidResponseFormat = errors.New("invalid response format")
	ErrIdentificationFailed  = errors.New("failed to identify plant")
	ErrInvalidRecord         = errors.New("plant record is incomplete")
)

type IdentifyService interface {
	// Identify turns an image data URI into the model's plant record JSON.
	// The object is returned as the model wrote it, compacted.
	Identify(ctx context.Context, imageDataURI string) (json.RawMessage, error)
}
