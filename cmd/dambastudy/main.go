// Command dambastudy is the terminal client of the DambaStudy API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dambastudy/backend/internal/cli"
	"github.com/dambastudy/backend/pkg/client"
	"github.com/dambastudy/backend/pkg/client/state"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logCfg.OutputPaths = []string{"stderr"}
	logger, err := logCfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	baseURL := os.Getenv("DAMBA_API_URL")
	if baseURL == "" {
		baseURL = client.DefaultBaseURL
	}

	dir, err := state.DefaultDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := cli.NewApp(ctx, baseURL, dir, os.Stdout, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cli.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
