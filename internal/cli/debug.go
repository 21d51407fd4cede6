package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/pickadate/internal/logger"
)

type DebugCmd struct {
	DBPath     *DebugDBPathCmd     `cmd:"" help:"Show the result log and log file locations."`
	DumpResult *DebugDumpResultCmd `cmd:"" help:"Dump a recorded result as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	configDir, err := ConfigDir(ctx.Store)
	if err != nil {
		return err
	}
	// GetConfigPath masks Postgres passwords
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
		"log":  logger.Path(configDir),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpResultCmd struct {
	ID string `arg:"" help:"Result ID or unique prefix."`
}

func (cmd *DebugDumpResultCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load result log: %w", err)
	}

	r, err := findResult(ctx.Store, cmd.ID)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
