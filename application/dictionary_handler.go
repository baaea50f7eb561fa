package application

import (
	"context"
	"fmt"
	"strings"

	"owl/domain/interfaces"
)

// dictionaryMaxEntries caps how many meanings the watcher shows.
const dictionaryMaxEntries = 3

// handleDictionary treats a message in the dictionary channel as a lookup
// phrase. Multi-word phrases are looked up verbatim.
func (r *Router) handleDictionary(ctx context.Context, msg *InboundMessage) (Action, error) {
	term := CleanLookupTerm(msg.Content)
	if term == "" {
		return ActionDropped, nil
	}

	definition, err := r.definitions.Lookup(ctx, term, dictionaryMaxEntries)
	if err != nil {
		r.postFailure(ctx, msg.ChannelID, fmt.Sprintf("Couldn't look up \"%s\".", term))
		return ActionDictionary, err
	}

	r.postResult(ctx, msg.ChannelID, DefinitionResult(definition))
	return ActionDictionary, nil
}

// DefinitionResult converts a structured definition into presentation data.
// Shared by the dictionary watcher and the define command.
func DefinitionResult(definition *interfaces.Definition) *Result {
	result := &Result{
		Behavior: BehaviorDictionary,
		Title:    fmt.Sprintf("📘 %s: quick meanings", definition.Word),
	}
	for _, entry := range definition.Entries {
		lines := []string{entry.Meaning}
		if len(entry.Synonyms) > 0 {
			lines = append(lines, "Synonyms: "+strings.Join(entry.Synonyms, ", "))
		}
		if len(entry.Antonyms) > 0 {
			lines = append(lines, "Antonyms: "+strings.Join(entry.Antonyms, ", "))
		}
		if entry.Example != "" {
			lines = append(lines, "Example: "+entry.Example)
		}
		result.Fields = append(result.Fields, Field{
			Name:  entry.PartOfSpeech,
			Value: strings.Join(lines, "\n"),
		})
	}
	return result
}
