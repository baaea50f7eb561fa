package interfaces

import (
	"context"

	"owl/domain/entities"
)

// ChatCompleter produces a completion for an ordered list of conversation
// turns. maxTokens bounds the length of the generated reply.
type ChatCompleter interface {
	Complete(ctx context.Context, turns []entities.ConversationTurn, maxTokens int) (string, error)
}

// LanguageIdentifier detects the language of a piece of text. It never
// fails past its boundary; undetermined input yields code "und" with zero
// confidence.
type LanguageIdentifier interface {
	Identify(text string) (code string, confidence float64)
}

// Transcriber converts a local audio file to text.
type Transcriber interface {
	Transcribe(ctx context.Context, localPath string) (string, error)
}

// SpeechSynthesizer renders text to speech in the given accent and returns
// the path of the generated audio file. The caller owns cleanup.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, accent string) (string, error)
}

// FileFetcher downloads a remote file to a local destination and returns
// the number of bytes written. Non-success transport status is an error.
type FileFetcher interface {
	Fetch(ctx context.Context, url, destPath string) (int64, error)
}

// DefinitionEntry is one meaning of a looked-up term.
type DefinitionEntry struct {
	PartOfSpeech string
	Meaning      string
	Synonyms     []string
	Antonyms     []string
	Example      string
}

// Definition is the structured result of a dictionary lookup.
type Definition struct {
	Word    string
	Entries []DefinitionEntry
}

// DefinitionProvider looks up a word or short phrase.
type DefinitionProvider interface {
	Lookup(ctx context.Context, term string, maxEntries int) (*Definition, error)
}
