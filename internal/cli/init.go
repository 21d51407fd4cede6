package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/pickadate/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete an existing SQLite or JSON result log before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized pickadate result log at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

func (c *InitCmd) reset(ctx *Context) error {
	switch ctx.Store.(type) {
	case *storage.SQLiteStore, *storage.JSONStore:
	default:
		return fmt.Errorf("--force only applies to file-backed result logs")
	}

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err == nil {
		// Close first so the file isn't locked
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing result log: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing result log: %w", err)
		}
		fmt.Printf("Deleted existing result log at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing result log: %w", err)
	}
	return nil
}
