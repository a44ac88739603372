package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/gla-tools/internal/config"
	"github.com/osse101/gla-tools/internal/discord"
	"github.com/osse101/gla-tools/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.LoadDiscord()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	closer := logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "gla-tools-discord",
		Version:     cfg.Version,
		Environment: cfg.Environment,
		LogDir:      cfg.LogDir,
	})
	defer closer.Close()

	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, requests to a protected API will fail")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:   cfg.Token,
		AppID:   cfg.AppID,
		GuildID: cfg.GuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	registerCommands(bot, getCommandFactories())

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// Commands registered earlier keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Run(gctx) })

	if cfg.HealthPort > 0 {
		httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
		g.Go(httpServer.Start)
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Stop(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// getCommandFactories returns every available Discord command factory
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.XPCommand,
		discord.CrystalsCommand,
		discord.TransferCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
