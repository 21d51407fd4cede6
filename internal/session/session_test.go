package session

import (
	"errors"
	"testing"

	"github.com/julianstephens/pickadate/internal/models"
	"github.com/julianstephens/pickadate/internal/summary"
)

func testItems() []models.Item {
	return []models.Item{
		{ID: 1, Title: "Coffee"},
		{ID: 3, Title: "Picnic"},
		{ID: 7, Title: "Drinks"},
	}
}

func newTestController(t *testing.T, policy summary.Policy) *Controller {
	t.Helper()
	c, err := New(Config{Items: testItems(), Policy: policy, Slug: "jane-doe"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNew_StartsActiveAtZero(t *testing.T) {
	c := newTestController(t, nil)

	if c.State() != Active {
		t.Errorf("State = %v, want active", c.State())
	}
	if c.Position() != 0 {
		t.Errorf("Position = %d, want 0", c.Position())
	}
	if len(c.Ratings()) != 0 {
		t.Errorf("expected no ratings, got %d", len(c.Ratings()))
	}
	item, ok := c.Current()
	if !ok || item.Title != "Coffee" {
		t.Errorf("Current = %v, %v; want Coffee", item, ok)
	}
	if _, isTop := c.Policy().(summary.TopPick); !isTop {
		t.Errorf("default policy = %T, want TopPick", c.Policy())
	}
}

func TestNew_RequiresItems(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNoItems) {
		t.Errorf("New with no items error = %v, want ErrNoItems", err)
	}
}

func TestSubmit_AdvancesByOne(t *testing.T) {
	c := newTestController(t, nil)

	for i, v := range []int{90, 60} {
		before := c.Position()
		if err := c.Submit(v); err != nil {
			t.Fatalf("Submit(%d) failed: %v", v, err)
		}
		if c.Position() != before+1 {
			t.Errorf("Position after submit %d = %d, want %d", i, c.Position(), before+1)
		}
		if len(c.Ratings()) != c.Position() {
			t.Errorf("len(Ratings) = %d, want %d", len(c.Ratings()), c.Position())
		}
		last := c.Ratings()[len(c.Ratings())-1]
		if last.Value != v {
			t.Errorf("last rating = %d, want %d", last.Value, v)
		}
	}
}

func TestSubmit_CompletesAtTotal(t *testing.T) {
	c := newTestController(t, nil)

	for _, v := range []int{90, 60, 90} {
		if err := c.Submit(v); err != nil {
			t.Fatalf("Submit(%d) failed: %v", v, err)
		}
	}

	if c.State() != Complete {
		t.Errorf("State = %v, want complete", c.State())
	}
	if c.Position() != c.Total() {
		t.Errorf("Position = %d, want %d", c.Position(), c.Total())
	}
	if _, ok := c.Current(); ok {
		t.Error("Current should report no item once complete")
	}
	if err := c.Submit(50); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Submit after complete error = %v, want ErrSessionComplete", err)
	}
	if len(c.Ratings()) != 3 {
		t.Errorf("rejected submit must not append, got %d ratings", len(c.Ratings()))
	}
}

func TestSubmit_RejectsOutOfRange(t *testing.T) {
	c := newTestController(t, nil)

	for _, v := range []int{-1, 101} {
		if err := c.Submit(v); !errors.Is(err, ErrRatingOutOfRange) {
			t.Errorf("Submit(%d) error = %v, want ErrRatingOutOfRange", v, err)
		}
	}
	if c.Position() != 0 {
		t.Errorf("Position = %d after rejected submits, want 0", c.Position())
	}
	for _, v := range []int{0, 100} {
		if err := c.Submit(v); err != nil {
			t.Errorf("Submit(%d) at the boundary failed: %v", v, err)
		}
	}
}

func TestReset_FromComplete(t *testing.T) {
	c := newTestController(t, nil)
	for _, v := range []int{20, 40, 60} {
		if err := c.Submit(v); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	c.Reset()

	if c.State() != Active || c.Position() != 0 || len(c.Ratings()) != 0 {
		t.Errorf("after Reset: state=%v position=%d ratings=%d", c.State(), c.Position(), len(c.Ratings()))
	}
	item, _ := c.Current()
	if item.Title != "Coffee" {
		t.Errorf("Current after reset = %q, want Coffee", item.Title)
	}
}

func TestSummary_UsesPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy summary.Policy
		want   []string
	}{
		{name: "top pick", policy: summary.TopPick{}, want: []string{"Coffee"}},
		{name: "threshold", policy: summary.Threshold{Min: 70}, want: []string{"Coffee", "Drinks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, tt.policy)
			for _, v := range []int{90, 60, 90} {
				if err := c.Submit(v); err != nil {
					t.Fatalf("Submit failed: %v", err)
				}
			}

			s := c.Summary()
			if len(s.Picks) != len(tt.want) {
				t.Fatalf("got %d picks, want %d", len(s.Picks), len(tt.want))
			}
			for i, title := range tt.want {
				if s.Picks[i].Item.Title != title {
					t.Errorf("pick %d = %q, want %q", i, s.Picks[i].Item.Title, title)
				}
			}
		})
	}
}

func TestHighlyRated(t *testing.T) {
	c := newTestController(t, nil)
	_ = c.Submit(70)
	_ = c.Submit(69)
	if got := c.HighlyRated(); got != 1 {
		t.Errorf("HighlyRated = %d, want 1", got)
	}
}

func TestRatings_ReturnsCopy(t *testing.T) {
	c := newTestController(t, nil)
	_ = c.Submit(80)
	r := c.Ratings()
	r[0].Value = 1
	if c.Ratings()[0].Value != 80 {
		t.Error("mutating the returned slice changed the session")
	}
}

func TestSetSlug_ResetsSession(t *testing.T) {
	c := newTestController(t, nil)
	_ = c.Submit(80)

	c.SetSlug("o-neil")

	if c.Position() != 0 {
		t.Errorf("Position = %d, want 0", c.Position())
	}
	if c.DisplayName() != "O Neil" {
		t.Errorf("DisplayName = %q, want %q", c.DisplayName(), "O Neil")
	}
}
