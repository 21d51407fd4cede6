package cli

import (
	"os"
	"path/filepath"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/pickadate/internal/backup"
	"github.com/julianstephens/pickadate/internal/constants"
	"github.com/julianstephens/pickadate/internal/keyring"
	"github.com/julianstephens/pickadate/internal/storage"
)

func TestResolveStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		config   string
		env      string
		keyring  string
		wantType string
		wantPath string
		wantErr  bool
	}{
		{name: "explicit sqlite", config: "/tmp/x.db", wantType: "sqlite", wantPath: "/tmp/x.db"},
		{name: "explicit json", config: "/tmp/x.json", wantType: "json", wantPath: "/tmp/x.json"},
		{name: "explicit postgres with password rejected", config: "postgres://u:secret@db/pickadate", wantErr: true},
		{name: "env postgres may carry a password", env: "postgres://u:secret@db/pickadate", wantType: "postgres"},
		{name: "keyring postgres", keyring: "postgres://u@db/pickadate", wantType: "postgres"},
		{name: "explicit config beats env", config: "/tmp/x.db", env: "postgres://u@db/pickadate", wantType: "sqlite"},
		{name: "default sqlite", wantType: "sqlite", wantPath: filepath.Join(home, ".config", "pickadate", "pickadate.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gokeyring.MockInit()
			t.Setenv(constants.ConnectionEnvVar, tt.env)
			if tt.keyring != "" {
				if err := keyring.SetConnectionString(tt.keyring); err != nil {
					t.Fatalf("SetConnectionString() error = %v", err)
				}
			}

			store, err := ResolveStore(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveStore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			var gotType string
			switch store.(type) {
			case *storage.SQLiteStore:
				gotType = "sqlite"
			case *storage.JSONStore:
				gotType = "json"
			case *storage.PostgresStore:
				gotType = "postgres"
			}
			if gotType != tt.wantType {
				t.Errorf("ResolveStore() type = %s, want %s", gotType, tt.wantType)
			}
			if tt.wantPath != "" && store.GetConfigPath() != tt.wantPath {
				t.Errorf("GetConfigPath() = %q, want %q", store.GetConfigPath(), tt.wantPath)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := ConfigDir(storage.NewSQLiteStore("/var/lib/pickadate/results.db"))
	if err != nil || dir != "/var/lib/pickadate" {
		t.Errorf("ConfigDir(sqlite) = %q, %v", dir, err)
	}

	dir, err = ConfigDir(storage.NewPostgresStore("postgres://u@db/pickadate"))
	if err != nil || dir != filepath.Join(home, ".config", "pickadate") {
		t.Errorf("ConfigDir(postgres) = %q, %v", dir, err)
	}
}

func TestItems(t *testing.T) {
	ctx := &Context{}
	items, err := ctx.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if len(items) == 0 {
		t.Error("default deck is empty")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("- id: 1\n  title: A\n- id: 1\n  title: B\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (&Context{DeckPath: bad}).Items(); err == nil {
		t.Error("Items() should reject a deck with duplicate IDs")
	}
}

func TestPerformAutomaticBackup(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.PerformAutomaticBackup()

	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("len(backups) = %d, want 1", len(backups))
	}

	// JSON logs are skipped
	(&Context{Store: storage.NewJSONStore(filepath.Join(t.TempDir(), "r.json"))}).PerformAutomaticBackup()
}
