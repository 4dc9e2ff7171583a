package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dsouzarc/incast/internal/cli"
	"github.com/dsouzarc/incast/internal/client"
	"github.com/dsouzarc/incast/internal/config"
	"github.com/dsouzarc/incast/internal/logger"
	"github.com/dsouzarc/incast/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize prediction history storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive prediction form." default:"1"`
	Predict cli.PredictCmd `cmd:"" help:"Request a one-shot prediction."`
	History cli.HistoryCmd `cmd:"" help:"Show past predictions."`
	Groups  cli.GroupsCmd  `cmd:"" help:"List assignment groups seen in history."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Check service and storage health."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("incast"),
		kong.Description("Incident-count prediction client"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(cfg.Storage.Path, ".json") {
		store = storage.NewJSONStore(cfg.Storage.Path)
	} else {
		store = storage.NewSQLiteStore(cfg.Storage.Path)
	}

	appCtx := &cli.Context{
		Config:  cfg,
		Store:   store,
		Service: client.New(cfg.Service.BaseURL, cfg.Service.Timeout),
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
