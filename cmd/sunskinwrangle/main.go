package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/matthewchungkaishing/FIT3179/src/wrangle"
)

func main() {
	var (
		configPath  string
		outDir      string
		melanomaCSV string
		logLevel    string
	)
	flag.StringVarP(&configPath, "config", "c", "", "Path to YAML config (defaults are used when omitted)")
	flag.StringVarP(&outDir, "out", "o", "", "Output directory for the dataset CSVs (overrides config)")
	flag.StringVar(&melanomaCSV, "melanoma-csv", "", "Path to the AIHW melanoma CSV export (overrides config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	wrangle.SetLogLevel(logLevel)

	cfg := wrangle.DefaultConfig()
	if configPath != "" {
		loaded, err := wrangle.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	if melanomaCSV != "" {
		cfg.MelanomaCSV = melanomaCSV
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := wrangle.NewPipeline(cfg).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	wrangle.Infof("datasets written to %s", cfg.OutDir)
}
