package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/pickadate/internal/cli"
	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/errors"
	"github.com/julianstephens/pickadate/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Result log: a SQLite file, a .json file, or a PostgreSQL connection string (default ${default_config}). Postgres credentials must NOT be embedded; use the OS keyring, ${connection_env} or .pgpass." type:"string"`
	DeckFile string `name:"deck" help:"YAML deck file to use instead of the built-in dates." type:"path"`
	Verbose  bool   `name:"debug" help:"Enable debug logging."`

	Play     cli.PlayCmd     `cmd:"" help:"Run the pick-your-perfect-date flow." default:"withargs"`
	Init     cli.InitCmd     `cmd:"" help:"Initialize the result log."`
	Slug     cli.SlugCmd     `cmd:"" help:"Show the route and display name for a visitor name."`
	Deck     cli.DeckCmd     `cmd:"" help:"List the dates in the deck."`
	Validate cli.ValidateCmd `cmd:"" help:"Validate the deck for conflicts."`
	History  struct {
		List cli.HistoryListCmd `cmd:"" help:"List recorded results." default:"withargs"`
		Show cli.HistoryShowCmd `cmd:"" help:"Show one result."`
	} `cmd:"" help:"Browse completed sessions."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage SQLite result log backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (masked)."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage the result log connection string in the OS keyring."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Debug  cli.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Pick your perfect date: rate a deck of date ideas and see your top picks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"connection_env": constants.ConnectionEnvVar,
			"history_limit":  strconv.Itoa(constants.DefaultHistoryLimit),
		},
	)

	store, err := cli.ResolveStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	configDir, err := cli.ConfigDir(store)
	if err != nil {
		errors.Fatal(err)
	}
	// The TUI owns the terminal, so only non-interactive commands mirror logs to stderr
	if err := logger.Init(logger.Config{
		Debug:     CLI.Verbose,
		ConfigDir: configDir,
		Stderr:    ctx.Command() != "play",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logger.Close()

	appCtx := &cli.Context{
		Store:    store,
		DeckPath: CLI.DeckFile,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		logger.Close()
		errors.Fatal(err)
	}
}
