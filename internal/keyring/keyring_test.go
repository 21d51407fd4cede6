package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/pickadate/internal/constants"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	want := "postgres://host@localhost:5432/pickadate?sslmode=disable"
	if err := SetConnectionString(want); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetConnectionString() = %q, want %q", got, want)
	}
}

func TestSetConnectionStringBlank(t *testing.T) {
	gokeyring.MockInit()

	for _, s := range []string{"", "   "} {
		if err := SetConnectionString(s); err == nil {
			t.Errorf("SetConnectionString(%q) should return an error", s)
		}
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://host@localhost/pickadate"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolveConnectionString(t *testing.T) {
	t.Run("env wins over keyring", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.ConnectionEnvVar, "postgres://env@db/pickadate")
		if err := SetConnectionString("postgres://ring@db/pickadate"); err != nil {
			t.Fatalf("SetConnectionString() failed: %v", err)
		}

		got, src, err := ResolveConnectionString()
		if err != nil {
			t.Fatalf("ResolveConnectionString() failed: %v", err)
		}
		if got != "postgres://env@db/pickadate" || src != SourceEnv {
			t.Errorf("ResolveConnectionString() = %q, %q", got, src)
		}
	})

	t.Run("falls back to keyring", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.ConnectionEnvVar, "")
		if err := SetConnectionString("postgres://ring@db/pickadate"); err != nil {
			t.Fatalf("SetConnectionString() failed: %v", err)
		}

		got, src, err := ResolveConnectionString()
		if err != nil {
			t.Fatalf("ResolveConnectionString() failed: %v", err)
		}
		if got != "postgres://ring@db/pickadate" || src != SourceKeyring {
			t.Errorf("ResolveConnectionString() = %q, %q", got, src)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		gokeyring.MockInit()
		t.Setenv(constants.ConnectionEnvVar, "")

		if _, _, err := ResolveConnectionString(); !errors.Is(err, ErrNotFound) {
			t.Errorf("ResolveConnectionString() error = %v, want %v", err, ErrNotFound)
		}
	})
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()
	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}
}
