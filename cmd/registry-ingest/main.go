package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/registry-ingest/internal/app"
	"github.com/yungbote/registry-ingest/internal/platform/shutdown"
)

func main() {
	configPath := flag.String("config", app.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Printf("failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	summary, err := a.Run(ctx)
	if err != nil {
		a.Logger().Error("run failed", "error", err)
		os.Exit(1)
	}
	if summary.Failed > 0 {
		// The batch finished, but not cleanly; callers scripting around the
		// binary need to see that.
		os.Exit(1)
	}
}
