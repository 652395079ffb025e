package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantscan/entities"
	"plantscan/pkg/ai"
	"plantscan/pkg/identify/service"
)

type fakeModel struct {
	text  string
	err   error
	calls int
	got   ai.InlineImage
	sent  string
}

func (f *fakeModel) Name() string { return "fake" }

func (f *fakeModel) Generate(ctx context.Context, prompt string, img ai.InlineImage) (string, error) {
	f.calls++
	f.got = img
	f.sent = prompt
	return f.text, f.err
}

const pothosResponse = "Here is the result:\n" +
	`{"name":"Pothos","scientificName":"Epipremnum aureum","family":"Araceae","description":"...",` +
	`"care":{"sunlight":"Low to Bright Light","water":"Low to Medium","temperature":"60-80°F","humidity":"30-60%"},` +
	`"nativeRegion":"Southeast Asia","uses":["Hanging Baskets"],"funFacts":["Can grow in water indefinitely"]}` +
	"\nHope this helps!"

func pothos() *entities.PlantRecord {
	return &entities.PlantRecord{
		Name:           "Pothos",
		ScientificName: "Epipremnum aureum",
		Family:         "Araceae",
		Description:    "...",
		Care: entities.CareInfo{
			Sunlight:    "Low to Bright Light",
			Water:       "Low to Medium",
			Temperature: "60-80°F",
			Humidity:    "30-60%",
		},
		NativeRegion: "Southeast Asia",
		Uses:         []string{"Hanging Baskets"},
		FunFacts:     []string{"Can grow in water indefinitely"},
	}
}

func decode(t *testing.T, raw json.RawMessage) *entities.PlantRecord {
	t.Helper()
	var rec entities.PlantRecord
	require.NoError(t, json.Unmarshal(raw, &rec))
	return &rec
}

func TestIdentifyDiscardsSurroundingProse(t *testing.T) {
	m := &fakeModel{text: pothosResponse}
	s := NewIdentifyService(m, false)

	raw, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, pothos(), decode(t, raw))
	assert.Equal(t, 1, m.calls)
}

func TestIdentifyForwardsRawPayloadAsJPEG(t *testing.T) {
	m := &fakeModel{text: pothosResponse}
	s := NewIdentifyService(m, false)

	_, err := s.Identify(context.Background(), "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "AAAA", m.got.Data)
	assert.Equal(t, "image/jpeg", m.got.MIMEType)
	assert.Equal(t, identifyPrompt, m.sent)
}

func TestIdentifyRoundTripsRecord(t *testing.T) {
	want := pothos()
	want.Uses = []string{"Hanging Baskets", "Trailing Plant"}
	b, err := json.Marshal(want)
	require.NoError(t, err)

	s := NewIdentifyService(&fakeModel{text: string(b)}, false)
	got, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, want, decode(t, got))
	assert.JSONEq(t, string(b), string(got))
}

func TestIdentifyMissingImageSkipsModel(t *testing.T) {
	m := &fakeModel{text: pothosResponse}
	s := NewIdentifyService(m, false)

	_, err := s.Identify(context.Background(), "  ")
	assert.ErrorIs(t, err, service.ErrMissingImage)
	assert.Zero(t, m.calls)
}

func TestIdentifyMalformedDataURISkipsModel(t *testing.T) {
	m := &fakeModel{text: pothosResponse}
	s := NewIdentifyService(m, false)

	_, err := s.Identify(context.Background(), "AAAA")
	assert.ErrorIs(t, err, service.ErrIdentificationFailed)
	assert.ErrorIs(t, err, service.ErrMalformedDataURI)
	assert.Zero(t, m.calls)
}

func TestIdentifyNoBracesIsInvalidFormat(t *testing.T) {
	s := NewIdentifyService(&fakeModel{text: "I could not find a plant in this picture."}, false)

	_, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	assert.ErrorIs(t, err, service.ErrInvalidResponseFormat)
}

func TestIdentifyInvalidJSONPropagates(t *testing.T) {
	s := NewIdentifyService(&fakeModel{text: `Result: {"name":"Pothos",}`}, false)

	_, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidResponseFormat)
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestIdentifyUpstreamFailure(t *testing.T) {
	cause := errors.New("quota exceeded")
	s := NewIdentifyService(&fakeModel{err: cause}, false)

	_, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	assert.ErrorIs(t, err, service.ErrIdentificationFailed)
	assert.ErrorIs(t, err, cause)
}

func TestIdentifyPassesIncompleteRecordByDefault(t *testing.T) {
	s := NewIdentifyService(&fakeModel{text: `{"name":"Mystery"}`}, false)

	raw, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Mystery"}`, string(raw))
}

func TestIdentifyPassesOffShapeRecordByDefault(t *testing.T) {
	const reply = `{"name":"Rose","scientificName":"Rosa","uses":"Ornamental",` +
		`"care":{"sunlight":"Full Sun","water":"Medium","temperature":70,"humidity":"40%"},"hardiness":"USDA 5-9"}`
	s := NewIdentifyService(&fakeModel{text: "Sure!\n" + reply + "\nEnjoy."}, false)

	raw, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.JSONEq(t, reply, string(raw))

	s = NewIdentifyService(&fakeModel{text: reply}, true)
	_, err = s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	assert.ErrorIs(t, err, service.ErrInvalidRecord)
}

func TestParseRecordCompacts(t *testing.T) {
	raw, err := ParseRecord("```json\n{\n  \"name\": \"Pothos\",\n  \"uses\": [ \"a\" ]\n}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Pothos","uses":["a"]}`, string(raw))
}

func TestIdentifyStrictRejectsIncompleteRecord(t *testing.T) {
	s := NewIdentifyService(&fakeModel{text: `{"name":"Mystery","scientificName":"Mysteria","care":{"sunlight":"Bright"}}`}, true)

	_, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	assert.ErrorIs(t, err, service.ErrInvalidRecord)

	s = NewIdentifyService(&fakeModel{text: pothosResponse}, true)
	raw, err := s.Identify(context.Background(), "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "Pothos", decode(t, raw).Name)
}

func TestStripDataURI(t *testing.T) {
	got, err := StripDataURI("data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "AAAA", got)

	got, err = StripDataURI("data:,a,b")
	require.NoError(t, err)
	assert.Equal(t, "a,b", got)

	_, err = StripDataURI("no-comma")
	assert.ErrorIs(t, err, service.ErrMalformedDataURI)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"bare", `{"a":1}`, `{"a":1}`, nil},
		{"greedy", `x {"a":{"b":2}} y {"c":3} z`, `{"a":{"b":2}} y {"c":3}`, nil},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, nil},
		{"none", "no json here", "", service.ErrInvalidResponseFormat},
		{"only open", "{ unterminated", "", service.ErrInvalidResponseFormat},
		{"reversed", "} then {", "", service.ErrInvalidResponseFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSON(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPromptDescribesRecordShape(t *testing.T) {
	for _, key := range []string{`"scientificName"`, `"care"`, `"humidity"`, `"nativeRegion"`, `"funFacts"`, "best guess", "uncertainty"} {
		assert.Contains(t, identifyPrompt, key)
	}
}
