package content_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/phrazzld/timension/internal/content"
	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/generation"
	"github.com/phrazzld/timension/internal/mocks"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, model generation.Model, opts ...content.Option) (*content.Service, *logger.TestLogBuffer) {
	t.Helper()
	log, buf := logger.NewTestLogger(t)
	return content.New(model, log, opts...), buf
}

func assertInChaosPool(t *testing.T, p domain.ChaosPuzzle) {
	t.Helper()
	for _, stock := range content.ChaosPool() {
		if stock.ID == p.ID {
			assert.Equal(t, stock, p)
			return
		}
	}
	t.Fatalf("puzzle %q is not one of the stock puzzles", p.ID)
}

func assertAllFallbacks(t *testing.T, svc *content.Service) {
	t.Helper()
	ctx := context.Background()

	assert.Equal(t, content.FallbackHeadline(), svc.GenerateDailyHeadline(ctx))
	assert.Equal(t, content.FallbackChatReply,
		svc.ChatWithMentor(ctx, "Albert Einstein", "1921", nil, "What is light?"))
	assert.Equal(t, content.FallbackExploration(), svc.ExploreLocation(ctx, "Sabarmati Ashram"))
	assert.Equal(t, content.FallbackTimeline(), svc.GenerateTimeline(ctx, "Salt March"))
	assert.Equal(t, content.FallbackMission(), svc.GetMissionBriefing(ctx, "1895", "Tesla's Lab Assistant"))
	assert.Equal(t, content.FallbackRipple(), svc.TriggerTimeRipple(ctx, "Hello", "Yo"))
	assertInChaosPool(t, svc.GenerateChaosPuzzle(ctx))
}

func TestNoCredentialServesFallbacks(t *testing.T) {
	svc, buf := newService(t, nil)

	assert.False(t, svc.Live())
	assertAllFallbacks(t, svc)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 7)
	for _, e := range entries {
		assert.Equal(t, "missing_credential", e["category"])
		assert.Equal(t, "WARN", e["level"])
		assert.Equal(t, "content", e["component"])
	}
}

func TestTransportFailureServesSameFallbacks(t *testing.T) {
	model := mocks.MockModelWithTransientFailure()
	svc, buf := newService(t, model)

	assert.True(t, svc.Live())
	assertAllFallbacks(t, svc)
	assert.Equal(t, 7, model.CallCount())

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "transport", e["category"])
		assert.Equal(t, "ERROR", e["level"])
	}
}

func TestTimelineRoundTripWithoutCredential(t *testing.T) {
	svc, _ := newService(t, nil)

	events := svc.GenerateTimeline(context.Background(), "Life of Tesla")

	require.Len(t, events, 3)
	assert.Equal(t, "1920", events[0].Year)
	assert.Equal(t, "Dawn of Movement", events[0].Title)
	assert.Equal(t, "1922", events[1].Year)
	assert.Equal(t, "Chauri Chaura", events[1].Title)
	assert.Equal(t, "1930", events[2].Year)
	assert.Equal(t, "Salt March", events[2].Title)
}

func TestGenerateDailyHeadline(t *testing.T) {
	t.Run("success overrides image", func(t *testing.T) {
		model := mocks.NewMockModelWithText(`{"headline":"NATION WAKES UP","date":"AUGUST 1, 1920",` +
			`"content":"Non-cooperation begins.","weather":"Winds of Swaraj, 32°C","imageUrl":"http://elsewhere"}`)
		svc, _ := newService(t, model)

		got := svc.GenerateDailyHeadline(context.Background())

		assert.Equal(t, "NATION WAKES UP", got.Headline)
		assert.Equal(t, "Winds of Swaraj, 32°C", got.Weather)
		assert.Equal(t, domain.ArchiveImageURL, got.ImageURL)

		req := model.Requests()[0]
		require.NotNil(t, req.Schema)
		assert.Equal(t, generation.TypeObject, req.Schema.Type)
		assert.ElementsMatch(t, []string{"headline", "date", "content", "weather"}, req.Schema.Required)
		assert.Contains(t, req.Prompt, "Timension")
		assert.False(t, req.UseMaps)
	})

	t.Run("missing field", func(t *testing.T) {
		svc, buf := newService(t, mocks.NewMockModelWithText(`{"headline":"X","date":"Y","content":"Z"}`))

		assert.Equal(t, content.FallbackHeadline(), svc.GenerateDailyHeadline(context.Background()))
		assert.Contains(t, buf.String(), "malformed_response")
	})

	t.Run("not json", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText("EXTRA! EXTRA!"))
		assert.Equal(t, content.FallbackHeadline(), svc.GenerateDailyHeadline(context.Background()))
	})

	t.Run("empty payload", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText("  "))
		assert.Equal(t, content.FallbackHeadline(), svc.GenerateDailyHeadline(context.Background()))
	})

	t.Run("blocked", func(t *testing.T) {
		svc, buf := newService(t, mocks.MockModelWithContentBlocked())
		assert.Equal(t, content.FallbackHeadline(), svc.GenerateDailyHeadline(context.Background()))
		assert.Contains(t, buf.String(), "content_blocked")
	})
}

func TestChatWithMentor(t *testing.T) {
	history := []domain.ChatMessage{
		{ID: "1", Sender: domain.SenderUser, Text: "Is time relative?"},
		{ID: "2", Sender: domain.SenderAI, Text: "Indeed, young one."},
	}

	t.Run("transcript and reply", func(t *testing.T) {
		model := mocks.NewMockModelWithText("Imagination is more important than knowledge.")
		svc, _ := newService(t, model)

		reply := svc.ChatWithMentor(context.Background(), "Albert Einstein", "1921", history, "And light?")

		assert.Equal(t, "Imagination is more important than knowledge.", reply)
		req := model.Requests()[0]
		assert.Nil(t, req.Schema)
		assert.False(t, req.UseMaps)
		assert.Contains(t, req.Prompt, "You are roleplaying as Albert Einstein from 1921.")
		assert.Contains(t, req.Prompt, "Student: Is time relative?\nAlbert Einstein: Indeed, young one.")
		assert.Contains(t, req.Prompt, "Student: And light?")
		assert.True(t, strings.HasSuffix(req.Prompt, "Albert Einstein:"))
	})

	t.Run("long history is kept verbatim", func(t *testing.T) {
		var long []domain.ChatMessage
		for i := 0; i < 200; i++ {
			long = append(long, domain.ChatMessage{Sender: domain.SenderUser, Text: fmt.Sprintf("turn %d", i)})
		}
		model := mocks.NewMockModelWithText("Hmm.")
		svc, _ := newService(t, model)

		svc.ChatWithMentor(context.Background(), "Cleopatra", "40 BC", long, "last")

		prompt := model.Requests()[0].Prompt
		assert.Contains(t, prompt, "Student: turn 0\n")
		assert.Contains(t, prompt, "Student: turn 199\n")
	})

	t.Run("empty reply", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(""))
		assert.Equal(t, content.EmptyChatReply,
			svc.ChatWithMentor(context.Background(), "Cleopatra", "40 BC", nil, "Hello"))
	})
}

func TestExploreLocation(t *testing.T) {
	t.Run("map citation becomes location", func(t *testing.T) {
		model := &mocks.MockModel{Response: &generation.Response{
			Text: "A humble ashram on the Sabarmati river.",
			Citations: []generation.Citation{
				{Title: "Sabarmati Ashram", URI: "https://maps.google.com/?cid=1"},
				{Title: "Second", URI: "https://maps.google.com/?cid=2"},
			},
		}}
		svc, _ := newService(t, model)

		got := svc.ExploreLocation(context.Background(), "Sabarmati Ashram")

		assert.Equal(t, "A humble ashram on the Sabarmati river.", got.Text)
		require.NotNil(t, got.Location)
		assert.Equal(t, "Sabarmati Ashram", got.Location.Title)
		assert.Equal(t, "https://maps.google.com/?cid=1", got.Location.URI)

		req := model.Requests()[0]
		assert.True(t, req.UseMaps)
		assert.Nil(t, req.Schema)
		assert.Contains(t, req.Prompt, `"Sabarmati Ashram"`)
	})

	t.Run("no grounding", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText("Timbuktu, city of manuscripts."))

		got := svc.ExploreLocation(context.Background(), "Timbuktu")

		assert.Nil(t, got.Location)
		assert.NotEmpty(t, got.Text)
	})

	t.Run("empty text", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(""))

		got := svc.ExploreLocation(context.Background(), "Atlantis")

		assert.Equal(t, content.EmptyExploreText, got.Text)
		assert.Nil(t, got.Location)
	})
}

func TestGenerateTimeline(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		model := mocks.NewMockModelWithText(`[
			{"year":"1856","title":"A GENIUS IS BORN","description":"Tesla born in Smiljan."},
			{"year":"1884","title":"NEW WORLD ARRIVAL","description":"Tesla lands in New York."},
			{"year":"1891","title":"COIL UNVEILED","description":"The Tesla coil is patented."},
			{"year":"1943","title":"WIZARD DIES","description":"Tesla dies in a New York hotel."}
		]`)
		svc, _ := newService(t, model)

		events := svc.GenerateTimeline(context.Background(), "Life of Tesla")

		require.Len(t, events, 4)
		assert.Equal(t, "1856", events[0].Year)
		assert.Equal(t, "WIZARD DIES", events[3].Title)

		req := model.Requests()[0]
		require.NotNil(t, req.Schema)
		assert.Equal(t, generation.TypeArray, req.Schema.Type)
		assert.Contains(t, req.Prompt, `"Life of Tesla"`)
	})

	tests := map[string]string{
		"empty array":         `[]`,
		"missing description": `[{"year":"1856","title":"BORN"}]`,
		"object not array":    `{"year":"1856","title":"BORN","description":"x"}`,
		"truncated":           `[{"year":"1856"`,
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t, mocks.NewMockModelWithText(payload))
			assert.Equal(t, content.FallbackTimeline(), svc.GenerateTimeline(context.Background(), "Tesla"))
		})
	}
}

func TestGetMissionBriefing(t *testing.T) {
	model := mocks.NewMockModelWithText(`{"codename":"OPERATION SANDSTORM","objective":"Join the caravan.",` +
		`"disguise":"Pilgrim robes.","passphrase":"The dunes remember."}`)
	svc, _ := newService(t, model)

	got := svc.GetMissionBriefing(context.Background(), "1325", "Expedition: Ibn Battuta")

	assert.Equal(t, domain.MissionBriefing{
		Codename:   "OPERATION SANDSTORM",
		Objective:  "Join the caravan.",
		Disguise:   "Pilgrim robes.",
		Passphrase: "The dunes remember.",
	}, got)
	prompt := model.Requests()[0].Prompt
	assert.Contains(t, prompt, `"Expedition: Ibn Battuta"`)
	assert.Contains(t, prompt, "1325")

	svc, _ = newService(t, mocks.NewMockModelWithText(`{"codename":"","objective":"a","disguise":"b","passphrase":"c"}`))
	assert.Equal(t, content.FallbackMission(), svc.GetMissionBriefing(context.Background(), "1325", "x"))
}

func TestTriggerTimeRipple(t *testing.T) {
	t.Run("values are not clamped", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(
			`{"consequence":"Rome adopts the telephone.","stabilityChange":-80,"futureHeadline":"SENATE ON HOLD"}`))

		got := svc.TriggerTimeRipple(context.Background(), "Veni, vidi, vici", "Call me maybe")

		assert.Equal(t, -80, got.StabilityChange)
		assert.Equal(t, 0, domain.ApplyStability(50, got.StabilityChange))
	})

	t.Run("zero change is valid", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(
			`{"consequence":"Nothing changes.","stabilityChange":0,"futureHeadline":"ALL QUIET"}`))

		assert.Equal(t, 0, svc.TriggerTimeRipple(context.Background(), "a", "b").StabilityChange)
	})

	t.Run("missing change", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(
			`{"consequence":"Something.","futureHeadline":"HEADLINE"}`))

		got := svc.TriggerTimeRipple(context.Background(), "a", "b")
		assert.Equal(t, content.FallbackRipple(), got)
		assert.Equal(t, -5, got.StabilityChange)
	})

	t.Run("prompt carries both texts", func(t *testing.T) {
		model := mocks.NewMockModelWithError(errors.New("dial tcp: connection refused"))
		svc, _ := newService(t, model)

		svc.TriggerTimeRipple(context.Background(), "Eureka!", "Whatever")

		prompt := model.Requests()[0].Prompt
		assert.Contains(t, prompt, `Original Dialogue: "Eureka!"`)
		assert.Contains(t, prompt, `New Dialogue: "Whatever"`)
	})
}

func TestGenerateChaosPuzzle(t *testing.T) {
	valid := `{"headline":"CLEOPATRA BUYS A SUBMARINE!","scenario":"The queen haggles at a naval yard.",` +
		`"misplacedFigure":"Cleopatra","currentEra":"Cold War (1960s)","correctEra":"Ptolemaic Egypt",` +
		`"challengeQuestion":"Which river did she rule?","options":["Thames","Nile","Seine","Hudson"],` +
		`"correctAnswerIndex":1,"restorationMessage":"She sails home on a golden barge."}`

	t.Run("success", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(valid),
			content.WithIDGenerator(func() string { return "puzzle-42" }))

		p := svc.GenerateChaosPuzzle(context.Background())

		assert.Equal(t, "puzzle-42", p.ID)
		assert.Len(t, p.Options, 4)
		assert.GreaterOrEqual(t, p.CorrectAnswerIndex, 0)
		assert.LessOrEqual(t, p.CorrectAnswerIndex, 3)
		assert.True(t, p.IsCorrect(1))
	})

	t.Run("default id is fresh", func(t *testing.T) {
		svc, _ := newService(t, mocks.NewMockModelWithText(valid))

		a := svc.GenerateChaosPuzzle(context.Background())
		b := svc.GenerateChaosPuzzle(context.Background())

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})

	invalid := map[string]string{
		"three options":  strings.Replace(valid, `"Thames","Nile","Seine","Hudson"`, `"Thames","Nile","Seine"`, 1),
		"index too high": strings.Replace(valid, `"correctAnswerIndex":1`, `"correctAnswerIndex":4`, 1),
		"negative index": strings.Replace(valid, `"correctAnswerIndex":1`, `"correctAnswerIndex":-1`, 1),
		"missing index":  strings.Replace(valid, `"correctAnswerIndex":1,`, ``, 1),
		"blank option":   strings.Replace(valid, `"Hudson"`, `""`, 1),
		"missing figure": strings.Replace(valid, `"misplacedFigure":"Cleopatra",`, ``, 1),
	}
	for name, payload := range invalid {
		t.Run(name, func(t *testing.T) {
			svc, _ := newService(t, mocks.NewMockModelWithText(payload),
				content.WithPicker(func(n int) int { return 2 }))

			p := svc.GenerateChaosPuzzle(context.Background())
			assert.Equal(t, "chaos-3", p.ID)
		})
	}

	t.Run("picker covers the pool", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			idx := i
			svc, _ := newService(t, nil, content.WithPicker(func(n int) int {
				assert.Equal(t, 5, n)
				return idx
			}))
			seen[svc.GenerateChaosPuzzle(context.Background()).ID] = true
		}
		assert.Len(t, seen, 5)
	})
}

func TestChaosPoolIsCopied(t *testing.T) {
	svc, _ := newService(t, nil, content.WithPicker(func(int) int { return 0 }))

	first := svc.GenerateChaosPuzzle(context.Background())
	first.Options[0] = "vandalised"

	second := svc.GenerateChaosPuzzle(context.Background())
	assert.Equal(t, "Limestone Cutting", second.Options[0])

	for _, p := range content.ChaosPool() {
		assert.Len(t, p.Options, 4)
		assert.Equal(t, 1, p.CorrectAnswerIndex)
	}
}

func TestCancelledContextServesFallback(t *testing.T) {
	model := &mocks.MockModel{
		GenerateFn: func(ctx context.Context, req generation.Request) (*generation.Response, error) {
			<-ctx.Done()
			return nil, fmt.Errorf("%w: %w", generation.ErrTransientFailure, ctx.Err())
		},
	}
	svc, buf := newService(t, model)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, content.FallbackMission(), svc.GetMissionBriefing(ctx, "1969", "Moon Landing Control"))
	assert.Contains(t, buf.String(), "cancelled")
}

func TestCorrelationIDIsLogged(t *testing.T) {
	svc, buf := newService(t, nil)
	ctx := logger.WithCorrelationID(context.Background(), "req-1922")

	svc.GenerateDailyHeadline(ctx)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1922", entries[0]["correlation_id"])
	assert.Equal(t, "headline", entries[0]["operation"])
}

func TestConcurrentCalls(t *testing.T) {
	model := mocks.NewMockModelWithText(`{"codename":"A","objective":"B","disguise":"C","passphrase":"D"}`)
	svc, _ := newService(t, model)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.GetMissionBriefing(context.Background(), "1920", "Dawn")
			svc.GenerateChaosPuzzle(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, model.CallCount())
}
