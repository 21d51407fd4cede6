package slug

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Jane", want: "jane"},
		{name: "two words", in: "Jane Doe", want: "jane-doe"},
		{name: "surrounding whitespace", in: "  Jane  ", want: "jane"},
		{name: "punctuation is not collapsed", in: "O'Neil, Jr.", want: "o-neil--jr-"},
		{name: "digits kept", in: "R2 D2", want: "r2-d2"},
		{name: "accented letters replaced", in: "Zoé", want: "zo-"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyCharset(t *testing.T) {
	inputs := []string{
		"Jane Doe",
		"ÅSA-LISA ünïcødé 🙂",
		"tabs\tand\nnewlines",
		"snake_case & <html>",
		"1234567890",
		"¯\\_(ツ)_/¯",
	}

	for _, in := range inputs {
		got := Slugify(in)
		for _, r := range got {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			if !ok {
				t.Errorf("Slugify(%q) = %q contains %q", in, got, r)
			}
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "jane-doe", want: "Jane Doe"},
		{in: "jane", want: "Jane"},
		{in: "o-neil--jr-", want: "O Neil  Jr "},
		{in: "", want: ""},
		{in: "r2-d2", want: "R2 D2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := DisplayName(tt.in); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTripIsLossy(t *testing.T) {
	name := "McDonald, Ronald"
	got := DisplayName(Slugify(name))
	if got == name {
		t.Fatalf("expected lossy round trip, got identical %q", got)
	}
	if got != "Mcdonald  Ronald" {
		t.Errorf("DisplayName(Slugify(%q)) = %q", name, got)
	}
}

func TestValid(t *testing.T) {
	if Valid("") || Valid("   ") || Valid("\t\n") {
		t.Error("expected empty and whitespace-only names to be invalid")
	}
	if !Valid(" a ") {
		t.Error("expected non-blank name to be valid")
	}
}

func TestRoute(t *testing.T) {
	if got := Route("jane-doe"); got != "/jane-doe" {
		t.Errorf("Route = %q", got)
	}
	if got := Route(""); got != "/" {
		t.Errorf("Route(\"\") = %q, want entry route", got)
	}
}
