package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/timension/internal/config"
	"github.com/phrazzld/timension/internal/generation"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGemini struct {
	mu     sync.Mutex
	bodies []map[string]any
	paths  []string
	status int
	reply  string
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	f.paths = append(f.paths, r.URL.Path)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.status != 0 {
		w.WriteHeader(f.status)
	}
	_, _ = io.WriteString(w, f.reply)
}

func (f *fakeGemini) lastBody(t *testing.T) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.bodies, "expected a request")
	return f.bodies[len(f.bodies)-1]
}

func newTestModel(t *testing.T, fake *fakeGemini) *Model {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	log, _ := logger.NewTestLogger(t)
	m, err := NewModel(context.Background(), log, config.LLMConfig{
		GeminiAPIKey: "test-key",
		ModelName:    "gemini-2.5-flash",
		BaseURL:      srv.URL,
	})
	require.NoError(t, err)
	return m
}

func textReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content":      map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}},
			"finishReason": "STOP",
		}},
	})
	return string(b)
}

func TestNewModelValidation(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	ctx := context.Background()

	_, err := NewModel(ctx, nil, config.LLMConfig{GeminiAPIKey: "k", ModelName: "m"})
	assert.Error(t, err)

	_, err = NewModel(ctx, log, config.LLMConfig{ModelName: "m"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewModel(ctx, log, config.LLMConfig{GeminiAPIKey: "k"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewModel(ctx, log, config.LLMConfig{GeminiAPIKey: "k", ModelName: "m", RequestTimeoutSeconds: -1})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestGenerateStructured(t *testing.T) {
	fake := &fakeGemini{reply: textReply(`{"codename":"OPERATION SALT"}`)}
	m := newTestModel(t, fake)

	resp, err := m.Generate(context.Background(), generation.Request{
		Prompt: "Generate a dossier",
		Schema: generation.Object(map[string]*generation.Schema{
			"codename": generation.String(),
		}, "codename"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"codename":"OPERATION SALT"}`, resp.Text)
	assert.Empty(t, resp.Citations)

	fake.mu.Lock()
	path := fake.paths[0]
	fake.mu.Unlock()
	assert.True(t, strings.HasSuffix(path, "gemini-2.5-flash:generateContent"), "unexpected path %s", path)

	body := fake.lastBody(t)
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"responseMimeType":"application/json"`)
	assert.Contains(t, string(raw), `"responseSchema"`)
	assert.Contains(t, string(raw), "Generate a dossier")
	assert.NotContains(t, string(raw), "googleMaps")
}

func TestGenerateWithMapsExtractsCitations(t *testing.T) {
	reply, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content":      map[string]any{"role": "model", "parts": []any{map[string]any{"text": "A quiet ashram on the river."}}},
			"finishReason": "STOP",
			"groundingMetadata": map[string]any{
				"groundingChunks": []any{
					map[string]any{"web": map[string]any{"title": "Encyclopedia", "uri": "https://example.org"}},
					map[string]any{"maps": map[string]any{"title": "Sabarmati Ashram", "uri": "https://maps.google.com/?cid=1"}},
				},
			},
		}},
	})
	fake := &fakeGemini{reply: string(reply)}
	m := newTestModel(t, fake)

	resp, err := m.Generate(context.Background(), generation.Request{Prompt: "Sabarmati", UseMaps: true})
	require.NoError(t, err)

	assert.Equal(t, "A quiet ashram on the river.", resp.Text)
	require.Len(t, resp.Citations, 1)
	assert.Equal(t, generation.Citation{Title: "Sabarmati Ashram", URI: "https://maps.google.com/?cid=1"}, resp.Citations[0])

	raw, err := json.Marshal(fake.lastBody(t))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "googleMaps")
	assert.NotContains(t, string(raw), "responseSchema")
}

func TestGenerateEmptyTextIsNotAnError(t *testing.T) {
	fake := &fakeGemini{reply: `{"candidates":[{"content":{"role":"model","parts":[]},"finishReason":"STOP"}]}`}
	m := newTestModel(t, fake)

	resp, err := m.Generate(context.Background(), generation.Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Empty(t, resp.Text)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		reply   string
		wantErr error
	}{
		{
			name:    "no candidates",
			reply:   `{"candidates":[]}`,
			wantErr: generation.ErrInvalidResponse,
		},
		{
			name:    "safety finish",
			reply:   `{"candidates":[{"content":{"role":"model","parts":[{"text":"x"}]},"finishReason":"SAFETY"}]}`,
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "blocked prompt",
			reply:   `{"promptFeedback":{"blockReason":"SAFETY"}}`,
			wantErr: generation.ErrContentBlocked,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			reply:   `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`,
			wantErr: generation.ErrTransientFailure,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			reply:   `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`,
			wantErr: generation.ErrTransientFailure,
		},
		{
			name:    "bad key",
			status:  http.StatusBadRequest,
			reply:   `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
			wantErr: generation.ErrGenerationFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, &fakeGemini{status: tc.status, reply: tc.reply})

			resp, err := m.Generate(context.Background(), generation.Request{Prompt: "p"})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	m := newTestModel(t, &fakeGemini{reply: textReply("late")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, generation.Request{Prompt: "p"})
	assert.ErrorIs(t, err, generation.ErrTransientFailure)
}

func TestToGenaiSchema(t *testing.T) {
	s := generation.ArrayOf(generation.Object(map[string]*generation.Schema{
		"year":  generation.String(),
		"count": generation.Integer(),
	}, "year", "count"))

	out := toGenaiSchema(s)

	require.NotNil(t, out)
	assert.Equal(t, genai.TypeArray, out.Type)
	require.NotNil(t, out.Items)
	assert.Equal(t, genai.TypeObject, out.Items.Type)
	assert.Equal(t, []string{"year", "count"}, out.Items.Required)
	assert.Equal(t, []string{"year", "count"}, out.Items.PropertyOrdering)
	assert.Equal(t, genai.TypeInteger, out.Items.Properties["count"].Type)
	assert.Nil(t, toGenaiSchema(nil))
}
