package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/format"
	"github.com/osse101/gla-tools/internal/leveling"
)

// XPCommand converts a level range into potions
func XPCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdXP,
		Description: "Quantas poções de XP para ir de um nível a outro",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptStart,
				Description: "Nível atual",
				Required:    true,
				MinValue:    floatPtr(leveling.MinLevel),
				MaxValue:    leveling.MaxLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptEnd,
				Description: "Nível desejado",
				Required:    true,
				MinValue:    floatPtr(leveling.MinLevel),
				MaxValue:    leveling.MaxLevel,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptTier,
				Description: "Tipo de poção",
				Required:    true,
				Choices:     tierChoices(),
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, api API) error {
		if !deferResponse(s, i) {
			return errDeferFailed
		}

		opts := optionMap(i)
		start := int(opts[OptStart].IntValue())
		end := int(opts[OptEnd].IntValue())
		tier := domain.PotionTier(opts[OptTier].StringValue())

		plan, err := api.PlanPotions(ctx, start, end, tier)
		if err != nil {
			respondFriendlyError(s, i, err)
			return err
		}

		sendEmbed(s, i, xpEmbed(plan))
		return nil
	}

	return cmd, handler
}

func xpEmbed(plan *domain.PotionPlan) *discordgo.MessageEmbed {
	embed := createEmbed(TitleXP, fmt.Sprintf("Nível %d → %d, poções %s", plan.StartLevel, plan.EndLevel, plan.Tier), ColorSuccess)

	potions := strings.Join(format.PotionLines(plan), "\n")
	if rest := plan.Experience - plan.Covered; rest > 0 {
		potions += "\n" + fmt.Sprintf(MsgRemainder, format.Int(rest))
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: FieldExperience, Value: format.Int(plan.Experience), Inline: true},
		{Name: FieldPotions, Value: potions},
	}
	if plan.PublishedExperience != nil && *plan.PublishedExperience != plan.Experience {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  FieldExperience,
			Value: fmt.Sprintf(MsgPublished, format.Int(*plan.PublishedExperience)),
		})
	}
	return embed
}
