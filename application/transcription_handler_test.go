package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"owl/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsAudioLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		att  Attachment
		want bool
	}{
		{
			name: "declared audio content type",
			att:  Attachment{Filename: "clip.bin", ContentType: "audio/ogg"},
			want: true,
		},
		{
			name: "declared video content type",
			att:  Attachment{Filename: "clip.bin", ContentType: "video/mp4"},
			want: true,
		},
		{
			name: "known extension without content type",
			att:  Attachment{Filename: "voice-note.m4a"},
			want: true,
		},
		{
			name: "extension match is case insensitive",
			att:  Attachment{Filename: "RECORDING.MP3"},
			want: true,
		},
		{
			name: "image attachment rejected",
			att:  Attachment{Filename: "photo.png", ContentType: "image/png"},
			want: false,
		},
		{
			name: "text file rejected",
			att:  Attachment{Filename: "notes.txt", ContentType: "text/plain"},
			want: false,
		},
		{
			name: "no hints rejected",
			att:  Attachment{Filename: "mystery"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAudioLike(tt.att))
		})
	}
}

func TestChunkText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"abc"}, chunkText("abc", 10))
	assert.Equal(t, []string{"abcde", "fghij", "k"}, chunkText("abcdefghijk", 5))
	assert.Equal(t, []string{""}, chunkText("", 5))

	long := strings.Repeat("x", transcriptChunkSize*2+1)
	chunks := chunkText(long, transcriptChunkSize)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], transcriptChunkSize)
	assert.Len(t, chunks[2], 1)

	t.Run("never splits a multi-byte rune", func(t *testing.T) {
		text := "a" + strings.Repeat("é", transcriptChunkSize)
		chunks := chunkText(text, transcriptChunkSize)
		require.Len(t, chunks, 3)
		for i, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk), "chunk %d contains invalid UTF-8", i+1)
		}
		assert.Equal(t, text, strings.Join(chunks, ""))
		assert.LessOrEqual(t, len(chunks[0]), transcriptChunkSize)
	})
}

func TestRouter_Transcription(t *testing.T) {
	t.Parallel()

	settings := &entities.GuildSettings{GuildID: 1, VoiceChannelID: ptr(100)}

	withAttachments := func(atts ...Attachment) *InboundMessage {
		msg := inbound("")
		msg.Attachments = atts
		return msg
	}

	t.Run("transcribes an audio attachment", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t, settings)
		f.fetcher.On("Fetch", mock.Anything, "https://cdn.example/voice.ogg", mock.Anything).Return(int64(2048), nil)
		f.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return("hello from the voice note", nil)

		action, err := f.router.HandleMessage(context.Background(), withAttachments(
			Attachment{Filename: "voice.ogg", URL: "https://cdn.example/voice.ogg", ContentType: "audio/ogg"},
		))

		require.NoError(t, err)
		assert.Equal(t, ActionTranscription, action)
		require.Len(t, f.presenter.results, 1)
		assert.Equal(t, BehaviorTranscription, f.presenter.results[0].Behavior)
		assert.Equal(t, "hello from the voice note", f.presenter.results[0].Body)
	})

	t.Run("message without audio attachments is dropped", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t, settings)

		action, err := f.router.HandleMessage(context.Background(), withAttachments(
			Attachment{Filename: "photo.png", ContentType: "image/png"},
		))

		require.NoError(t, err)
		assert.Equal(t, ActionDropped, action)
		f.fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("one failing attachment does not abort the others", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t, settings)
		f.fetcher.On("Fetch", mock.Anything, "https://cdn.example/bad.mp3", mock.Anything).Return(int64(0), errors.New("404"))
		f.fetcher.On("Fetch", mock.Anything, "https://cdn.example/good.mp3", mock.Anything).Return(int64(1024), nil)
		f.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return("the good one", nil)

		action, err := f.router.HandleMessage(context.Background(), withAttachments(
			Attachment{Filename: "bad.mp3", URL: "https://cdn.example/bad.mp3"},
			Attachment{Filename: "good.mp3", URL: "https://cdn.example/good.mp3"},
		))

		require.NoError(t, err)
		assert.Equal(t, ActionTranscription, action)
		require.Len(t, f.presenter.results, 1)
		assert.Equal(t, "the good one", f.presenter.results[0].Body)
		require.Len(t, f.presenter.failures, 1)
	})

	t.Run("empty transcript posts a notice instead of a result", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t, settings)
		f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(int64(512), nil)
		f.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return("   ", nil)

		action, err := f.router.HandleMessage(context.Background(), withAttachments(
			Attachment{Filename: "silence.wav", URL: "https://cdn.example/silence.wav"},
		))

		require.NoError(t, err)
		assert.Equal(t, ActionTranscription, action)
		assert.Empty(t, f.presenter.results)
		require.Len(t, f.presenter.failures, 1)
		assert.Contains(t, f.presenter.failures[0], "empty")
	})

	t.Run("long transcript is chunked into numbered parts", func(t *testing.T) {
		t.Parallel()

		f := newRouterFixture(t, settings)
		f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).Return(int64(4096), nil)
		f.transcriber.On("Transcribe", mock.Anything, mock.Anything).Return(strings.Repeat("a", transcriptChunkSize+10), nil)

		action, err := f.router.HandleMessage(context.Background(), withAttachments(
			Attachment{Filename: "long.flac", URL: "https://cdn.example/long.flac"},
		))

		require.NoError(t, err)
		assert.Equal(t, ActionTranscription, action)
		require.Len(t, f.presenter.results, 2)
		assert.Contains(t, f.presenter.results[0].Title, "(1/2)")
		assert.Contains(t, f.presenter.results[1].Title, "(2/2)")
	})
}
