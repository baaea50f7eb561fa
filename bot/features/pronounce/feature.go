package pronounce

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"owl/application"
	"owl/bot/common"
	"owl/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /owl pronounce command
type Feature struct {
	synthesizer interfaces.SpeechSynthesizer
}

// NewFeature creates a new pronounce feature instance
func NewFeature(synthesizer interfaces.SpeechSynthesizer) *Feature {
	return &Feature{
		synthesizer: synthesizer,
	}
}

// HandleCommand handles the pronounce subcommand. Synthesis takes a few
// seconds, so the response is deferred first; the generated audio file is
// uploaded and then removed.
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options[0].Options

	var input string
	for _, opt := range options {
		if opt.Name == "text" {
			input = opt.StringValue()
		}
	}

	req, ok := application.ParsePronounceInput(input)
	if !ok {
		common.RespondWithError(s, i, "❌ Nothing to pronounce")
		return
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	ctx := context.Background()
	audioPath, err := f.synthesizer.Synthesize(ctx, req.Text, req.Accent)
	if err != nil {
		log.WithField("accent", req.Accent).WithError(err).Warn("speech synthesis failed")
		common.FollowUpWithError(s, i, "❌ Could not generate audio")
		return
	}
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			log.WithField("path", audioPath).WithError(err).Debug("failed to remove audio file")
		}
	}()

	audio, err := os.Open(audioPath)
	if err != nil {
		log.Errorf("Failed to open generated audio: %v", err)
		common.FollowUpWithError(s, i, "❌ Could not generate audio")
		return
	}
	defer audio.Close()

	embed := common.ResultEmbed("Pronunciation", fmt.Sprintf("%s (%s)", req.Text, strings.ToUpper(req.Accent)))
	files := []*discordgo.File{
		{
			Name:        filepath.Base(audioPath),
			ContentType: "audio/mpeg",
			Reader:      audio,
		},
	}

	if _, err := common.FollowUpWithEmbed(s, i, embed, files); err != nil {
		log.Errorf("Failed to send pronunciation: %v", err)
	}
}
