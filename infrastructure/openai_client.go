package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"owl/application"
	"owl/domain/entities"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient backs the chat completion, transcription, speech synthesis,
// and dictionary lookup capabilities with the OpenAI API. One client is
// constructed at startup and injected everywhere it is needed.
type OpenAIClient struct {
	client    *openai.Client
	chatModel string
	tempDir   string
}

// NewOpenAIClient creates an OpenAI-backed capability client.
func NewOpenAIClient(apiKey, tempDir string) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		chatModel: openai.GPT4oMini,
		tempDir:   tempDir,
	}
}

// accentVoices maps supported accent codes to synthesis voices.
var accentVoices = map[string]openai.SpeechVoice{
	"us": openai.VoiceAlloy,
	"uk": openai.VoiceFable,
	"au": openai.VoiceNova,
	"in": openai.VoiceShimmer,
	"ca": openai.VoiceEcho,
	"ie": openai.VoiceOnyx,
	"za": openai.VoiceAlloy,
}

// Complete produces a chat completion for the given turns.
func (c *OpenAIClient) Complete(ctx context.Context, turns []entities.ConversationTurn, maxTokens int) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.chatModel,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", application.NewAdapterError("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return "", application.NewAdapterError("chat completion", errors.New("response contained no choices"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Transcribe converts a local audio file to text.
func (c *OpenAIClient) Transcribe(ctx context.Context, localPath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: localPath,
	})
	if err != nil {
		return "", application.NewAdapterError("transcription", err)
	}
	return resp.Text, nil
}

// Synthesize renders text to speech in the given accent and returns the
// path of the generated audio file. The caller owns cleanup.
func (c *OpenAIClient) Synthesize(ctx context.Context, text, accent string) (string, error) {
	voice, ok := accentVoices[strings.ToLower(accent)]
	if !ok {
		return "", application.NewAdapterError("speech synthesis", fmt.Errorf("unsupported accent %q", accent))
	}

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: voice,
	})
	if err != nil {
		return "", application.NewAdapterError("speech synthesis", err)
	}
	defer resp.Close()

	out, err := os.CreateTemp(c.tempDir, "owl-tts-*.mp3")
	if err != nil {
		return "", application.NewAdapterError("speech synthesis", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp); err != nil {
		os.Remove(out.Name())
		return "", application.NewAdapterError("speech synthesis", err)
	}
	return out.Name(), nil
}
