package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/timension/internal/generation"
	"github.com/phrazzld/timension/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModelDefaults(t *testing.T) {
	m := mocks.NewMockModelWithText("hello")

	resp, err := m.Generate(context.Background(), generation.Request{Prompt: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)

	_, _ = m.Generate(context.Background(), generation.Request{Prompt: "p2", UseMaps: true})
	assert.Equal(t, 2, m.CallCount())
	assert.Equal(t, "p2", m.Requests()[1].Prompt)
	assert.True(t, m.Requests()[1].UseMaps)
}

func TestMockModelFn(t *testing.T) {
	boom := errors.New("boom")
	m := &mocks.MockModel{
		GenerateFn: func(ctx context.Context, req generation.Request) (*generation.Response, error) {
			return nil, boom
		},
	}

	_, err := m.Generate(context.Background(), generation.Request{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, mocks.MockModelWithContentBlocked().Err, generation.ErrContentBlocked)
}
