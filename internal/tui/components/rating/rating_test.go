package rating

import (
	"errors"
	"testing"

	"github.com/julianstephens/pickadate/internal/models"
)

type stubSession struct {
	got []int
	err error
}

func (s *stubSession) Current() (models.Item, bool) { return models.Item{}, true }

func (s *stubSession) Submit(v int) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, v)
	return nil
}

func TestSubmit(t *testing.T) {
	s := &stubSession{}
	cmd := Submit(s, 80)

	// The session is updated before the command runs
	if len(s.got) != 1 || s.got[0] != 80 {
		t.Fatalf("Submit() recorded %v, want [80]", s.got)
	}
	msg, ok := cmd().(RatedMsg)
	if !ok {
		t.Fatalf("Submit() command returned %T, want RatedMsg", cmd())
	}
	if msg.Value != 80 || msg.Err != nil {
		t.Errorf("RatedMsg = %+v", msg)
	}
}

func TestSubmitError(t *testing.T) {
	want := errors.New("complete")
	msg := Submit(&stubSession{err: want}, 20)().(RatedMsg)
	if !errors.Is(msg.Err, want) {
		t.Errorf("RatedMsg.Err = %v, want %v", msg.Err, want)
	}
}
