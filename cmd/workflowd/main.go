// Command workflowd serves the workflow editor over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	log "github.com/sirupsen/logrus"

	"today/internal/config"
	"today/internal/web"
	"today/internal/workflow"
)

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("workflowd", flag.ContinueOnError)
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	store := workflow.NewStore(filepath.Join(cfg.RootDir, "workflow.json"))
	srv := web.New(cfg, store, log.StandardLogger())

	url := fmt.Sprintf("http://127.0.0.1:%d/workflow.html", cfg.Port)
	fmt.Printf("Serving on %s\n", url)
	if !cfg.NoOpen {
		web.OpenBrowser(url)
	}

	if err := srv.Start(ctx); err != nil {
		return err
	}
	if ctx.Err() != nil {
		fmt.Println("\nStopping server.")
	}
	return nil
}
