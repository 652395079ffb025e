// pkg/ai/mock_client.go

package ai

import (
	"context"
	"errors"
)

// MockResponse is what the mock client answers for every image.
const MockResponse = "Here is the result:\n" +
	`{"name":"Pothos","scientificName":"Epipremnum aureum","family":"Araceae",` +
	`"description":"Golden Pothos is a forgiving trailing vine with heart-shaped, gold-variegated leaves. (mock identification)",` +
	`"care":{"sunlight":"Low to Bright Light","water":"Low to Medium","temperature":"60-80°F","humidity":"30-60%"},` +
	`"nativeRegion":"Southeast Asia","uses":["Hanging Baskets","Trailing Plant","Air Purification"],` +
	`"funFacts":["Can grow in water indefinitely","Leaves lose variegation in low light"]}` +
	"\nHope this helps!"

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Name() string { return "mock" }

func (m *mockClient) Generate(ctx context.Context, prompt string, img InlineImage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if img.Data == "" {
		return "", errors.New("mock: empty image payload")
	}
	return MockResponse, nil
}
