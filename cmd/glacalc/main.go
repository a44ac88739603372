// Command glacalc answers experience and boost crystal questions offline.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/gla-tools/internal/config"
	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/leveling"
	"github.com/osse101/gla-tools/internal/logger"
)

func main() {
	_ = godotenv.Load()

	// Engine logs go to stderr so stdout stays clean for results
	logger.InitLoggerWithWriter(logger.Config{
		Level:       logger.LogLevelWarn,
		Format:      logger.LogFormatText,
		ServiceName: "glacalc",
	}, os.Stderr)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit code
func run(args []string, out, errOut io.Writer) int {
	registry := newRegistry()

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "ajuda" {
		registry.PrintHelp(out)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(errOut, "comando desconhecido: %s\n\n", args[0])
		registry.PrintHelp(errOut)
		return 2
	}

	if err := cmd.Run(args[1:], out); err != nil {
		fmt.Fprintln(errOut, userMessage(err))
		return 1
	}
	return 0
}

func newRegistry() *Registry {
	pricesFile := os.Getenv(envPricesFile)
	if pricesFile == "" {
		pricesFile = defaultPricesFile
	}

	levelingService := leveling.NewService()
	enhancementService := enhancement.NewService(enhancement.Config{})

	r := NewRegistry()
	r.Register(&xpCommand{svc: levelingService})
	r.Register(&crystalsCommand{svc: enhancementService, loadDefaults: func() (domain.PriceTable, error) {
		return config.LoadPrices(pricesFile)
	}})
	r.Register(&transferCommand{svc: enhancementService})
	r.Register(&rulesCommand{svc: enhancementService})
	return r
}
