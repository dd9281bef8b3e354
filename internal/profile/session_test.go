package profile

import (
	"errors"
	"reflect"
	"testing"
)

func TestSessionSkip(t *testing.T) {
	s := NewSession(nil)

	if _, err := s.Profile(); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("expected ErrNotFinalized, got %v", err)
	}

	if err := s.SaveProfile(validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateDeciding {
		t.Fatalf("expected deciding, got %s", s.State())
	}

	if err := s.Skip(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Answers().Len() != 0 {
		t.Fatalf("expected no answers after skip")
	}

	if answered, total := s.Progress(); answered != 0 || total != len(AdditionalQuestions) {
		t.Fatalf("unexpected progress %d/%d", answered, total)
	}
}

func TestSessionQuestions(t *testing.T) {
	s := NewSession([]string{"first?", "second?"})

	if err := s.SaveProfile(validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AskMore(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx, q, ok := s.Current()
	if !ok || idx != 0 || q != "first?" {
		t.Fatalf("unexpected current question: %d %q %v", idx, q, ok)
	}

	if err := s.Answer("  "); !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("expected ErrEmptyAnswer, got %v", err)
	}
	if idx, _, _ := s.Current(); idx != 0 {
		t.Fatalf("blank answer must not advance, got index %d", idx)
	}

	if err := s.Answer("Physics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Profile(); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("expected ErrNotFinalized before the last answer, got %v", err)
	}

	if err := s.Answer("Team work"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.State() != StateFinalized {
		t.Fatalf("expected finalized, got %s", s.State())
	}
	if _, _, ok := s.Current(); ok {
		t.Fatalf("no question expected after finalization")
	}

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answers := p.Answers()
	if got := answers.Questions(); !reflect.DeepEqual(got, []string{"first?", "second?"}) {
		t.Fatalf("unexpected questions: %q", got)
	}
	if got := answers.Text(); got != "physics team work" {
		t.Fatalf("unexpected answers text: %q", got)
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	s := NewSession([]string{"only?"})

	if err := s.AskMore(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition before saving, got %v", err)
	}
	if err := s.Answer("x"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	bad := validInput()
	bad.TechSkills = ","
	var verr *ValidationError
	if err := s.SaveProfile(bad); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.State() != StateBuilding {
		t.Fatalf("failed save must keep building state, got %s", s.State())
	}

	if err := s.SaveProfile(validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AskMore(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.SaveProfile(validInput()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition while questioning, got %v", err)
	}
	if err := s.Skip(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition while questioning, got %v", err)
	}

	if err := s.Answer("done"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Answer("again"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after finalization, got %v", err)
	}
}

func TestSessionResaveClearsState(t *testing.T) {
	s := NewSession([]string{"q?"})

	if err := s.SaveProfile(validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changed := validInput()
	changed.Education = "Law"
	if err := s.SaveProfile(changed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Skip(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Education() != Law {
		t.Fatalf("expected the latest saved profile, got %q", p.Education())
	}
}

func TestSessionWithoutQuestionsFinalizesOnAskMore(t *testing.T) {
	s := NewSession([]string{})

	if err := s.SaveProfile(validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AskMore(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateFinalized {
		t.Fatalf("expected finalized, got %s", s.State())
	}
}
