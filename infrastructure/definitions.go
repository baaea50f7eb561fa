package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"owl/application"
	"owl/domain/interfaces"

	"github.com/sashabaranov/go-openai"
)

const lexiconSystemPrompt = "You are an expert English lexicographer. " +
	"Given a word or short phrase, return concise, modern explanations. " +
	"Put the most common, general meanings first. Keep examples short and natural."

const lexiconJSONInstructions = "Respond in STRICT JSON with keys: word (string), entries (array of 1-5 objects). " +
	"Each entry object MUST have: pos (string, lowercase like 'noun' or 'verb'), " +
	"meaning (string <= 22 words, simple wording), synonyms (array of 0-5 short strings), " +
	"antonyms (array of 0-5 short strings), example (string <= 16 words). " +
	"No markdown, no commentary, JSON only."

var (
	codeFencePattern  = regexp.MustCompile(`(?i)^` + "```" + `(?:json)?\s*|\s*` + "```" + `$`)
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

type lexiconEntry struct {
	Pos      string   `json:"pos"`
	Meaning  string   `json:"meaning"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
	Example  string   `json:"example"`
}

type lexiconResponse struct {
	Word    string         `json:"word"`
	Entries []lexiconEntry `json:"entries"`
}

// Lookup queries the model for compact dictionary data in JSON mode and is
// robust to JSON hiccups: malformed output is salvaged where possible and
// otherwise degrades to a guaranteed single-entry one-line summary.
func (c *OpenAIClient) Lookup(ctx context.Context, term string, maxEntries int) (*interfaces.Definition, error) {
	parsed, err := c.queryLexicon(ctx, term, maxEntries)
	if err != nil {
		return nil, err
	}

	word := strings.TrimSpace(parsed.Word)
	if word == "" {
		word = term
	}

	definition := &interfaces.Definition{Word: word}
	for _, entry := range parsed.Entries {
		if len(definition.Entries) == maxEntries {
			break
		}
		meaning := strings.TrimSpace(entry.Meaning)
		if meaning == "" {
			continue
		}
		pos := strings.ToLower(strings.TrimSpace(entry.Pos))
		if pos == "" {
			pos = "meaning"
		}
		definition.Entries = append(definition.Entries, interfaces.DefinitionEntry{
			PartOfSpeech: pos,
			Meaning:      meaning,
			Synonyms:     cleanWordList(entry.Synonyms),
			Antonyms:     cleanWordList(entry.Antonyms),
			Example:      strings.TrimSpace(entry.Example),
		})
	}

	if len(definition.Entries) > 0 {
		return definition, nil
	}

	// Last resort: a one-line summary still yields one usable entry.
	meaning, err := c.oneLiner(ctx, term)
	if err != nil {
		return nil, err
	}
	if meaning == "" {
		meaning = "A commonly used English term."
	}
	definition.Entries = []interfaces.DefinitionEntry{{PartOfSpeech: "meaning", Meaning: meaning}}
	return definition, nil
}

// queryLexicon asks for structured lexicon data, retrying once with simpler
// guidance when the first response does not parse.
func (c *OpenAIClient) queryLexicon(ctx context.Context, term string, maxEntries int) (*lexiconResponse, error) {
	userPrompt := fmt.Sprintf("Word: %s\nMax entries: %d\n\n%s", term, maxEntries, lexiconJSONInstructions)

	text, err := c.completeJSON(ctx, userPrompt)
	if err != nil {
		return nil, err
	}
	if parsed := salvageJSON(text); parsed != nil {
		return parsed, nil
	}

	retryPrompt := fmt.Sprintf("Word: %s\nReturn 1-4 entries.\n%s", term, lexiconJSONInstructions)
	text, err = c.completeJSON(ctx, retryPrompt)
	if err != nil {
		return nil, err
	}
	if parsed := salvageJSON(text); parsed != nil {
		return parsed, nil
	}

	return &lexiconResponse{Word: term}, nil
}

func (c *OpenAIClient) completeJSON(ctx context.Context, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: lexiconSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   500,
		Temperature: 0.2,
	})
	if err != nil {
		return "", application.NewAdapterError("definition lookup", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) oneLiner(ctx context.Context, term string) (string, error) {
	prompt := fmt.Sprintf("Give ONE short main meaning (<= 18 words) for: %s\nPlain text only; no quotes.", term)
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: lexiconSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   60,
		Temperature: 0.2,
	})
	if err != nil {
		return "", application.NewAdapterError("definition lookup", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// salvageJSON parses model output into lexicon data, stripping code fences
// and falling back to the first JSON object found in the text.
func salvageJSON(text string) *lexiconResponse {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
	}

	var parsed lexiconResponse
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return &parsed
	}
	if m := jsonObjectPattern.FindString(text); m != "" {
		if err := json.Unmarshal([]byte(m), &parsed); err == nil {
			return &parsed
		}
	}
	return nil
}

func cleanWordList(words []string) []string {
	var cleaned []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		cleaned = append(cleaned, w)
		if len(cleaned) == 5 {
			break
		}
	}
	return cleaned
}
