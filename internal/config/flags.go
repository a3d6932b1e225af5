package config

import (
	"flag"
)

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("today", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.StoreFile, "file", cfg.StoreFile, "Path to the task store file")
	fs.StringVar(&cfg.RootDir, "root", cfg.RootDir, "Directory served by the workflow server")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "Workflow server port")
	fs.BoolVar(&cfg.NoOpen, "no-open", cfg.NoOpen, "Do not open the browser on server start")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	return fs.Parse(args)
}
