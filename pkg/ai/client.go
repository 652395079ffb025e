// pkg/ai/client.go

package ai

import "context"

// InlineImage is an image sent alongside the prompt. Data is base64 text, as
// received from the browser, without the data URI prefix.
type InlineImage struct {
	MIMEType string
	Data     string
}

type Client interface {
	// Generate sends one prompt plus one image and returns the model's raw text.
	Generate(ctx context.Context, prompt string, img InlineImage) (string, error)

	// Name identifies the backing model, for logs and health output.
	Name() string
}
