package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/profile"
)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testRequest(t *testing.T) *ai.Request {
	t.Helper()

	p, err := profile.New(profile.Input{
		Education:  "Computer Science",
		Interests:  "AI, robotics",
		TechSkills: "python",
		SoftSkills: "teamwork",
	})
	if err != nil {
		t.Fatalf("building profile: %v", err)
	}

	return &ai.Request{
		Profile: p,
		Jobs:    []dataset.JobRecord{{Title: "ML Engineer"}, {Title: "Data Scientist"}},
		Courses: []dataset.CourseRecord{{Name: "Intro to AI"}},
	}
}

func TestAdvisorAdvise(t *testing.T) {
	stub := &stubGenerator{response: "```text\nStart with Intro to AI.\n```"}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	advice, err := advisor.Advise(context.Background(), testRequest(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Text != "Start with Intro to AI." {
		t.Fatalf("unexpected advice: %q", advice.Text)
	}
	if advice.Raw != stub.response {
		t.Fatalf("expected raw response to be kept")
	}

	if stub.lastSystem != systemInstruction {
		t.Fatalf("unexpected system instruction: %q", stub.lastSystem)
	}

	for _, want := range []string{
		"- Educational background: Computer Science",
		"- Interests: ai, robotics",
		"- ML Engineer\n- Data Scientist",
		"- Intro to AI",
	} {
		if !strings.Contains(stub.lastPrompt, want) {
			t.Fatalf("expected prompt to contain %q, got:\n%s", want, stub.lastPrompt)
		}
	}
	if strings.Contains(stub.lastPrompt, "{{") {
		t.Fatalf("placeholders left in prompt:\n%s", stub.lastPrompt)
	}
}

func TestAdvisorEmptyLists(t *testing.T) {
	stub := &stubGenerator{response: "Keep exploring."}
	req := testRequest(t)
	req.Jobs = nil
	req.Courses = nil

	if _, err := NewAdvisor(stub, nil, 0).Advise(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stub.lastPrompt, "Recommended jobs:\nnone") {
		t.Fatalf("expected none placeholder for jobs, got:\n%s", stub.lastPrompt)
	}
}

func TestAdvisorErrors(t *testing.T) {
	if _, err := NewAdvisor(&stubGenerator{}, nil, 0).Advise(context.Background(), &ai.Request{}); err == nil {
		t.Fatal("expected error without profile")
	}

	boom := errors.New("boom")
	if _, err := NewAdvisor(&stubGenerator{err: boom}, nil, 0).Advise(context.Background(), testRequest(t)); !errors.Is(err, boom) {
		t.Fatalf("expected generator error, got %v", err)
	}

	if _, err := NewAdvisor(&stubGenerator{response: "```\n```"}, nil, 0).Advise(context.Background(), testRequest(t)); err == nil {
		t.Fatal("expected error for empty advice")
	}
}

func TestAdvisorLogsTruncatedPreview(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	stub := &stubGenerator{response: strings.Repeat("a", 50)}

	if _, err := NewAdvisor(stub, zap.New(core), 10).Advise(context.Background(), testRequest(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("gemini generate content response").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 response entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["response_preview"]; got != strings.Repeat("a", 10)+"..." {
		t.Fatalf("unexpected preview: %q", got)
	}
}
