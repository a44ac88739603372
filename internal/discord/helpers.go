package discord

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/handler"
)

// deferResponse acknowledges an interaction with a deferred message.
// Required before any API call that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respondError replaces the deferred message with plain text
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgRespondFailed, "error", err)
	}
}

// respondFriendlyError explains err to the user
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError maps API and transport failures to short user messages
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 500 {
			return MsgAPIUnavailable
		}
		switch apiErr.Message {
		case handler.ErrMsgInvalidRangeError:
			return MsgInvalidRange
		case handler.ErrMsgUnknownSlotError:
			return MsgUnknownSlot
		case handler.ErrMsgUnknownTierError:
			return MsgUnknownTier
		case "":
			return MsgGenericError
		}
		return "⚠️ " + apiErr.Message
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return MsgAPIUnavailable
	}
	return MsgGenericError
}

// sendEmbed replaces the deferred message with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgRespondFailed, "error", err)
	}
}

// createEmbed creates a standard embed with the shared footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterGLATools,
		},
	}
}

// optionMap indexes the command's options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// codeBlock wraps text so Discord keeps its columns aligned
func codeBlock(text string) string {
	return "```\n" + strings.TrimRight(text, "\n") + "\n```"
}

func slotChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(domain.EquipmentSlots))
	for n, slot := range domain.EquipmentSlots {
		choices[n] = &discordgo.ApplicationCommandOptionChoice{Name: string(slot), Value: string(slot)}
	}
	return choices
}

func tierChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(domain.PotionTiers))
	for n, tier := range domain.PotionTiers {
		choices[n] = &discordgo.ApplicationCommandOptionChoice{Name: string(tier), Value: string(tier)}
	}
	return choices
}

func floatPtr(f float64) *float64 { return &f }

var errDeferFailed = errors.New("deferred response failed")
