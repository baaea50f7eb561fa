package testhelpers

import (
	"context"

	"owl/domain/entities"
	"owl/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockChatCompleter is a mock implementation of ChatCompleter
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, turns []entities.ConversationTurn, maxTokens int) (string, error) {
	args := m.Called(ctx, turns, maxTokens)
	return args.String(0), args.Error(1)
}

// MockLanguageIdentifier is a mock implementation of LanguageIdentifier
type MockLanguageIdentifier struct {
	mock.Mock
}

func (m *MockLanguageIdentifier) Identify(text string) (string, float64) {
	args := m.Called(text)
	return args.String(0), args.Get(1).(float64)
}

// MockTranscriber is a mock implementation of Transcriber
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, localPath string) (string, error) {
	args := m.Called(ctx, localPath)
	return args.String(0), args.Error(1)
}

// MockSpeechSynthesizer is a mock implementation of SpeechSynthesizer
type MockSpeechSynthesizer struct {
	mock.Mock
}

func (m *MockSpeechSynthesizer) Synthesize(ctx context.Context, text, accent string) (string, error) {
	args := m.Called(ctx, text, accent)
	return args.String(0), args.Error(1)
}

// MockFileFetcher is a mock implementation of FileFetcher
type MockFileFetcher struct {
	mock.Mock
}

func (m *MockFileFetcher) Fetch(ctx context.Context, url, destPath string) (int64, error) {
	args := m.Called(ctx, url, destPath)
	return args.Get(0).(int64), args.Error(1)
}

// MockDefinitionProvider is a mock implementation of DefinitionProvider
type MockDefinitionProvider struct {
	mock.Mock
}

func (m *MockDefinitionProvider) Lookup(ctx context.Context, term string, maxEntries int) (*interfaces.Definition, error) {
	args := m.Called(ctx, term, maxEntries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.Definition), args.Error(1)
}
