package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/format"
	"github.com/osse101/gla-tools/internal/handler"
)

// priceOptions maps the optional price arguments to their crystal type
var priceOptions = []struct {
	name    string
	crystal domain.CrystalType
}{
	{OptCeu, domain.CrystalCeu},
	{OptSabio, domain.CrystalSabio},
	{OptCarmesim, domain.CrystalCarmesim},
	{OptRadiante, domain.CrystalRadiante},
}

func slotOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        OptSlot,
		Description: "Equipamento",
		Required:    true,
		Choices:     slotChoices(),
	}
}

// CrystalsCommand estimates the crystals needed to max out a slot
func CrystalsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	options := []*discordgo.ApplicationCommandOption{
		slotOption(),
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptLevel,
			Description: "Nível de aprimoramento atual",
			Required:    true,
			MinValue:    floatPtr(enhancement.MinLevel),
			MaxValue:    enhancement.MaxLevel,
		},
	}
	for _, p := range priceOptions {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        p.name,
			Description: "Preço de " + string(p.crystal),
			MinValue:    floatPtr(0),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        CmdCrystals,
		Description: "Estimativa de cristais até o nível máximo",
		Options:     options,
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, api API) error {
		if !deferResponse(s, i) {
			return errDeferFailed
		}

		opts := optionMap(i)
		slot := domain.EquipmentSlot(opts[OptSlot].StringValue())
		level := int(opts[OptLevel].IntValue())

		prices := make(map[domain.CrystalType]int64)
		for _, p := range priceOptions {
			if o, ok := opts[p.name]; ok {
				prices[p.crystal] = o.IntValue()
			}
		}

		est, err := api.Estimate(ctx, slot, level, prices)
		if err != nil {
			respondFriendlyError(s, i, err)
			return err
		}

		sendEmbed(s, i, crystalsEmbed(est))
		return nil
	}

	return cmd, handler
}

func crystalsEmbed(resp *handler.EstimateResponse) *discordgo.MessageEmbed {
	est := resp.UpgradeEstimate
	embed := createEmbed(TitleCrystals, fmt.Sprintf("%s +%d", est.Slot, est.CurrentLevel), ColorCrystal)

	if len(est.Levels) == 0 {
		embed.Description += "\n" + format.AlreadyMaxed
	} else {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: FieldLevels, Value: codeBlock(format.EstimateTable(est))},
			&discordgo.MessageEmbedField{Name: FieldTotals, Value: strings.Join(format.CrystalSummary(est), "\n")},
			&discordgo.MessageEmbedField{
				Name:   FieldTotal,
				Value:  format.Span(est.TotalLow, est.TotalHigh) + " cristais\n" + format.Span(est.TotalCostLow, est.TotalCostHigh) + " " + format.UnitBerry,
				Inline: true,
			},
		)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   FieldTransfer,
		Value:  format.Int(int64(est.TransferCost)) + " " + format.UnitGems,
		Inline: true,
	})

	if len(resp.Warnings) > 0 {
		embed.Description += "\n" + fmt.Sprintf(MsgPriceWarnings, strings.Join(resp.Warnings, "; "))
	}
	return embed
}

// TransferCommand reports the gem cost of moving a boost to another piece
func TransferCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdTransfer,
		Description: "Custo em gemas para transferir o aprimoramento",
		Options: []*discordgo.ApplicationCommandOption{
			slotOption(),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptLevel,
				Description: "Nível de aprimoramento",
				Required:    true,
				MinValue:    floatPtr(0),
				MaxValue:    enhancement.MaxLevel,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, api API) error {
		if !deferResponse(s, i) {
			return errDeferFailed
		}

		opts := optionMap(i)
		slot := domain.EquipmentSlot(opts[OptSlot].StringValue())
		level := int(opts[OptLevel].IntValue())

		gems, err := api.TransferCost(ctx, slot, level)
		if err != nil {
			respondFriendlyError(s, i, err)
			return err
		}

		msg := fmt.Sprintf(MsgTransferMessage, slot, level, format.Int(int64(gems)), format.UnitGems)
		sendEmbed(s, i, createEmbed(TitleTransfer, msg, ColorGems))
		return nil
	}

	return cmd, handler
}
