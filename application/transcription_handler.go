package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// transcriptChunkSize keeps each posted transcript piece inside message
// embed limits.
const transcriptChunkSize = 1800

// audioLikeExtensions is the attachment extension allow-list for
// transcription when no content type is declared.
var audioLikeExtensions = []string{
	".mp3", ".wav", ".m4a", ".aac", ".ogg", ".oga", ".opus", ".flac", ".wma",
	".webm", ".mp4", ".m4v", ".mov", ".mkv",
}

// IsAudioLike reports whether an attachment qualifies for transcription:
// either its declared content type mentions audio or video, or its filename
// carries a known audio/video extension (case-insensitive).
func IsAudioLike(att Attachment) bool {
	ct := strings.ToLower(att.ContentType)
	if strings.Contains(ct, "audio") || strings.Contains(ct, "video") {
		return true
	}
	name := strings.ToLower(att.Filename)
	for _, ext := range audioLikeExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// handleTranscription downloads and transcribes every audio-like attachment
// on a message in the voice channel. Attachments are processed
// independently; one failure never aborts the siblings.
func (r *Router) handleTranscription(ctx context.Context, msg *InboundMessage) (Action, error) {
	var audio []Attachment
	for _, att := range msg.Attachments {
		if IsAudioLike(att) {
			audio = append(audio, att)
		}
	}
	if len(audio) == 0 {
		return ActionDropped, nil
	}

	for _, att := range audio {
		if err := r.transcribeAttachment(ctx, msg.ChannelID, att); err != nil {
			log.WithFields(log.Fields{
				"channel_id": msg.ChannelID,
				"attachment": att.Filename,
			}).WithError(err).Warn("attachment transcription failed")
		}
	}
	return ActionTranscription, nil
}

// transcribeAttachment fetches one attachment to a temporary file,
// transcribes it, and posts the transcript. The download completes before
// transcription starts, and the temporary file is removed on every exit
// path.
func (r *Router) transcribeAttachment(ctx context.Context, channelID string, att Attachment) error {
	tempPath := filepath.Join(r.tempDir, fmt.Sprintf("owl-%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(att.Filename))))
	defer removeQuietly(tempPath)

	if _, err := r.fetcher.Fetch(ctx, att.URL, tempPath); err != nil {
		r.postFailure(ctx, channelID, "Couldn't download the audio.")
		return err
	}

	text, err := r.transcriber.Transcribe(ctx, tempPath)
	if err != nil {
		r.postFailure(ctx, channelID, "Couldn't transcribe the audio.")
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		r.postFailure(ctx, channelID, "Transcription failed or empty.")
		return nil
	}

	chunks := chunkText(text, transcriptChunkSize)
	for i, chunk := range chunks {
		title := "📜 Transcription"
		if len(chunks) > 1 {
			title = fmt.Sprintf("📜 Transcription (%d/%d)", i+1, len(chunks))
		}
		r.postResult(ctx, channelID, &Result{
			Behavior: BehaviorTranscription,
			Title:    title,
			Body:     chunk,
		})
	}
	return nil
}

// removeQuietly deletes a temporary file, treating absence as a no-op.
func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithField("path", path).WithError(err).Warn("failed to remove temporary file")
	}
}

// chunkText splits text into pieces of at most size bytes, never cutting
// through a multi-byte rune.
func chunkText(text string, size int) []string {
	var chunks []string
	for len(text) > size {
		cut := size
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = size
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return append(chunks, text)
}
