package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/pickadate/internal/backup"
	"github.com/julianstephens/pickadate/internal/constants"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	store, err := ctx.sqliteStore()
	if err != nil {
		return err
	}
	if err := store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	store, err := ctx.sqliteStore()
	if err != nil {
		return err
	}

	mgr := backup.NewManager(store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%s, %s)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path),
			humanize.Bytes(uint64(b.Size)),
			humanize.Time(b.Timestamp),
		)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`

	in io.Reader
}

func (c *BackupRestoreCmd) confirm() (bool, error) {
	if c.Yes {
		return true, nil
	}
	in := c.in
	if in == nil {
		in = os.Stdin
	}

	fmt.Print("Continue? [y/N]: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	store, err := ctx.sqliteStore()
	if err != nil {
		return err
	}

	mgr := backup.NewManager(store.GetConfigPath())
	backupPath, err := mgr.ResolveBackupPath(c.BackupFile)
	if err != nil {
		return err
	}

	fmt.Println("⚠️  WARNING: This will replace your result log with the backup.")
	fmt.Println("A snapshot of the current result log will be taken before restoring.")
	fmt.Printf("\nRestore from: %s\n", filepath.Base(backupPath))

	ok, err := c.confirm()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Restore cancelled.")
		return nil
	}

	// Close the current connection before the file is replaced
	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close result log: %v\n", err)
	}

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Result log restored successfully!")
	if preRestore != "" {
		fmt.Printf("  Previous result log saved as: %s\n", filepath.Base(preRestore))
	}
	fmt.Println("Restart any running pickadate sessions to use the restored result log.")
	return nil
}
