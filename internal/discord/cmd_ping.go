package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdPing,
		Description: "Verifica se o bot está online",
	}

	handler := func(_ context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, _ API) error {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: MsgPong,
			},
		})
	}

	return cmd, handler
}
