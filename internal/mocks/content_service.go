package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/timension/internal/domain"
)

// ChatCall records the arguments of one ChatWithMentor call.
type ChatCall struct {
	Name    string
	Era     string
	History []domain.ChatMessage
	Message string
}

// MockContentService mocks the content service for handler tests. Zero
// fields yield zero values; set the Fn fields to intercept calls.
type MockContentService struct {
	HeadlineFn func(ctx context.Context) domain.NewsArticle
	ChatFn     func(ctx context.Context, name, era string, history []domain.ChatMessage, message string) string
	ExploreFn  func(ctx context.Context, query string) domain.Exploration
	TimelineFn func(ctx context.Context, topic string) []domain.TimelineEvent
	MissionFn  func(ctx context.Context, year, title string) domain.MissionBriefing
	RippleFn   func(ctx context.Context, originalText, newText string) domain.RippleResult
	ChaosFn    func(ctx context.Context) domain.ChaosPuzzle

	IsLive bool

	mu    sync.Mutex
	chats []ChatCall
}

// GenerateDailyHeadline mocks content.Service.GenerateDailyHeadline
func (m *MockContentService) GenerateDailyHeadline(ctx context.Context) domain.NewsArticle {
	if m.HeadlineFn != nil {
		return m.HeadlineFn(ctx)
	}
	return domain.NewsArticle{}
}

// ChatWithMentor mocks content.Service.ChatWithMentor and records the call
func (m *MockContentService) ChatWithMentor(
	ctx context.Context,
	name, era string,
	history []domain.ChatMessage,
	message string,
) string {
	m.mu.Lock()
	m.chats = append(m.chats, ChatCall{Name: name, Era: era, History: history, Message: message})
	m.mu.Unlock()

	if m.ChatFn != nil {
		return m.ChatFn(ctx, name, era, history, message)
	}
	return ""
}

// ChatCalls returns the recorded ChatWithMentor calls.
func (m *MockContentService) ChatCalls() []ChatCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ChatCall(nil), m.chats...)
}

// ExploreLocation mocks content.Service.ExploreLocation
func (m *MockContentService) ExploreLocation(ctx context.Context, query string) domain.Exploration {
	if m.ExploreFn != nil {
		return m.ExploreFn(ctx, query)
	}
	return domain.Exploration{}
}

// GenerateTimeline mocks content.Service.GenerateTimeline
func (m *MockContentService) GenerateTimeline(ctx context.Context, topic string) []domain.TimelineEvent {
	if m.TimelineFn != nil {
		return m.TimelineFn(ctx, topic)
	}
	return nil
}

// GetMissionBriefing mocks content.Service.GetMissionBriefing
func (m *MockContentService) GetMissionBriefing(ctx context.Context, year, title string) domain.MissionBriefing {
	if m.MissionFn != nil {
		return m.MissionFn(ctx, year, title)
	}
	return domain.MissionBriefing{}
}

// TriggerTimeRipple mocks content.Service.TriggerTimeRipple
func (m *MockContentService) TriggerTimeRipple(ctx context.Context, originalText, newText string) domain.RippleResult {
	if m.RippleFn != nil {
		return m.RippleFn(ctx, originalText, newText)
	}
	return domain.RippleResult{}
}

// GenerateChaosPuzzle mocks content.Service.GenerateChaosPuzzle
func (m *MockContentService) GenerateChaosPuzzle(ctx context.Context) domain.ChaosPuzzle {
	if m.ChaosFn != nil {
		return m.ChaosFn(ctx)
	}
	return domain.ChaosPuzzle{}
}

// Live mocks content.Service.Live
func (m *MockContentService) Live() bool {
	return m.IsLive
}
