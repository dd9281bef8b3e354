package profile

import (
	"reflect"
	"testing"
)

func TestAnswers(t *testing.T) {
	var a Answers
	a.Set("q1", "I love Maths")
	a.Set("q2", "  Team   work ")
	a.Set("q1", "Physics")

	if a.Len() != 2 {
		t.Fatalf("expected 2 answers, got %d", a.Len())
	}
	if got := a.Questions(); !reflect.DeepEqual(got, []string{"q1", "q2"}) {
		t.Fatalf("re-answering must keep the question position, got %q", got)
	}
	if got, ok := a.Get("q1"); !ok || got != "Physics" {
		t.Fatalf("unexpected answer: %q", got)
	}
	if _, ok := a.Get("missing"); ok {
		t.Fatalf("expected missing question to be absent")
	}

	if got := a.Text(); got != "physics   team   work " {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := a.Tokens(); !reflect.DeepEqual(got, []string{"physics", "team", "work"}) {
		t.Fatalf("unexpected tokens: %q", got)
	}
}

func TestAnswersEmpty(t *testing.T) {
	var a Answers

	if a.Text() != "" || len(a.Tokens()) != 0 || len(a.Items()) != 0 {
		t.Fatalf("expected empty answers, got %+v", a.Items())
	}
}

func TestAnswersClone(t *testing.T) {
	var a Answers
	a.Set("q1", "one")

	clone := a.Clone()
	clone.Set("q1", "changed")
	clone.Set("q2", "two")

	if got, _ := a.Get("q1"); got != "one" || a.Len() != 1 {
		t.Fatalf("clone must not share state with the original")
	}
}
