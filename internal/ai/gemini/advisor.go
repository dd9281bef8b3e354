package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/logger"
)

const systemInstruction = "You give concise, encouraging career advice grounded only in the data you are given."

const defaultMaxLogLength = 200

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

// Advisor asks Gemini to comment on a finished recommendation.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Advisor = (*Advisor)(nil)

func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Advise(ctx context.Context, req *ai.Request) (*ai.Advice, error) {
	if req == nil || req.Profile == nil {
		return nil, fmt.Errorf("profile is required")
	}

	prompt := buildPrompt(req)

	a.logger.Debug("gemini generate content request",
		zap.Int("jobs", len(req.Jobs)),
		zap.Int("courses", len(req.Courses)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.Truncate(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.Truncate(raw, a.maxLogLen)),
	)

	text := stripFences(raw)
	if text == "" {
		return nil, fmt.Errorf("gemini returned no advice")
	}

	return &ai.Advice{Text: text, Raw: raw}, nil
}

func buildPrompt(req *ai.Request) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE}}\n\nJobs:\n{{JOBS}}\n\nCourses:\n{{COURSES}}\n\nAdvice:"
	}

	p := req.Profile
	var profile strings.Builder
	fmt.Fprintf(&profile, "- Educational background: %s\n", p.Education())
	fmt.Fprintf(&profile, "- Interests: %s\n", orNone(p.Interests().String()))
	fmt.Fprintf(&profile, "- Technical skills: %s\n", orNone(p.TechSkills().String()))
	fmt.Fprintf(&profile, "- Soft skills: %s", orNone(p.SoftSkills().String()))
	for _, qa := range p.Answers().Items() {
		fmt.Fprintf(&profile, "\n- %s %s", qa.Question, qa.Answer)
	}

	jobs := make([]string, 0, len(req.Jobs))
	for _, job := range req.Jobs {
		jobs = append(jobs, "- "+job.Title)
	}
	courses := make([]string, 0, len(req.Courses))
	for _, course := range req.Courses {
		courses = append(courses, "- "+course.Name)
	}

	prompt := strings.ReplaceAll(template, "{{PROFILE}}", profile.String())
	prompt = strings.ReplaceAll(prompt, "{{JOBS}}", orNone(strings.Join(jobs, "\n")))
	prompt = strings.ReplaceAll(prompt, "{{COURSES}}", orNone(strings.Join(courses, "\n")))
	return prompt
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
