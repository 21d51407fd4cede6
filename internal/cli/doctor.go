package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/pickadate/internal/backup"
	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/keyring"
	"github.com/julianstephens/pickadate/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	report := func(name string, err error) {
		if err != nil {
			fmt.Printf("❌ %s: FAIL\n", name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			return
		}
		fmt.Printf("✓ %s: OK\n", name)
	}
	warn := func(name string, err error) {
		if err != nil {
			fmt.Printf("⚠ %s: WARNING\n", name)
			fmt.Printf("   %v\n", err)
			return
		}
		fmt.Printf("✓ %s: OK\n", name)
	}

	report("Deck valid", checkDeck(ctx))

	reachable := checkStoreReachable(ctx)
	report("Result log reachable", reachable)
	if reachable == nil {
		report("Schema version", checkSchemaVersion(ctx))
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (result log not reachable)\n")
	}

	if _, ok := ctx.Store.(*storage.SQLiteStore); ok {
		warn("Backups present", checkBackupsPresent(ctx))
	}
	warn("OS keyring", checkKeyring())
	report("Clock", checkClock())

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDeck(ctx *Context) error {
	items, err := ctx.Items()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("deck has no dates")
	}
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load result log: %w", err)
	}
	if _, err := ctx.Store.GetResults(1); err != nil {
		return fmt.Errorf("failed to query result log: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	v, ok := ctx.Store.(storage.Versioned)
	if !ok {
		// JSON logs have no schema
		return nil
	}

	current, latest, err := v.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'pickadate backup create'")
	}
	return nil
}

func checkKeyring() error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring unavailable; use %s or --config for Postgres", constants.ConnectionEnvVar)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
