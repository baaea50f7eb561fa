package dictionary

import (
	"context"
	"fmt"
	"strings"

	"owl/application"
	"owl/bot/common"
	"owl/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	defaultEntries = 4
	fullEntries    = 6
)

// Feature handles the /owl define command
type Feature struct {
	definitions interfaces.DefinitionProvider
}

// NewFeature creates a new dictionary feature instance
func NewFeature(definitions interfaces.DefinitionProvider) *Feature {
	return &Feature{
		definitions: definitions,
	}
}

// HandleCommand handles the define subcommand. The lookup can take a few
// seconds, so the response is deferred first.
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options[0].Options

	var term string
	maxEntries := defaultEntries
	for _, opt := range options {
		switch opt.Name {
		case "term":
			term = opt.StringValue()
		case "full":
			if opt.BoolValue() {
				maxEntries = fullEntries
			}
		}
	}

	term = application.CleanLookupTerm(term)
	if term == "" {
		common.RespondWithError(s, i, "❌ Nothing to look up")
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	ctx := context.Background()
	definition, err := f.definitions.Lookup(ctx, term, maxEntries)
	if err != nil {
		log.WithField("term", term).WithError(err).Warn("dictionary lookup failed")
		common.FollowUpWithError(s, i, fmt.Sprintf("❌ Could not look up \"%s\"", term))
		return
	}

	embed := common.ResultEmbed(definition.Word, "")
	for idx, entry := range definition.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", idx+1, entry.PartOfSpeech),
			Value: formatEntry(entry),
		})
	}

	if _, err := common.FollowUpWithEmbed(s, i, embed, nil); err != nil {
		log.Errorf("Failed to send definition: %v", err)
	}
}

func formatEntry(entry interfaces.DefinitionEntry) string {
	var b strings.Builder
	b.WriteString(entry.Meaning)
	if entry.Example != "" {
		fmt.Fprintf(&b, "\n*%s*", entry.Example)
	}
	if len(entry.Synonyms) > 0 {
		fmt.Fprintf(&b, "\nSynonyms: %s", strings.Join(entry.Synonyms, ", "))
	}
	if len(entry.Antonyms) > 0 {
		fmt.Fprintf(&b, "\nAntonyms: %s", strings.Join(entry.Antonyms, ", "))
	}
	return b.String()
}
