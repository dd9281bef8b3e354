package profile

import (
	"errors"
	"fmt"
	"strings"
)

// State is a step of the questionnaire.
type State int

const (
	// StateBuilding waits for the core profile fields.
	StateBuilding State = iota
	// StateDeciding waits for the user to ask for more questions or skip them.
	StateDeciding
	// StateQuestioning walks through the follow-up questions.
	StateQuestioning
	// StateFinalized holds a profile ready for recommendations.
	StateFinalized
)

var (
	ErrInvalidTransition = errors.New("invalid questionnaire transition")
	ErrEmptyAnswer       = errors.New("answer must not be empty")
	ErrNotFinalized      = errors.New("profile is not finalized")
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StateDeciding:
		return "deciding"
	case StateQuestioning:
		return "questioning"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session drives a single questionnaire from the first form to a finalized profile.
type Session struct {
	state     State
	questions []string
	index     int
	base      *Profile
	answers   Answers
	final     *Profile
}

// NewSession creates a session asking the given follow-up questions.
// A nil slice means AdditionalQuestions.
func NewSession(questions []string) *Session {
	if questions == nil {
		questions = AdditionalQuestions
	}
	qs := make([]string, len(questions))
	copy(qs, questions)

	return &Session{state: StateBuilding, questions: qs}
}

func (s *Session) State() State { return s.state }

// SaveProfile validates and stores the core fields. Saving again before the
// follow-up questions start replaces the profile and clears the answers.
func (s *Session) SaveProfile(in Input) error {
	if s.state != StateBuilding && s.state != StateDeciding {
		return s.transitionError("save profile")
	}

	p, err := New(Input{
		Education:  in.Education,
		Interests:  in.Interests,
		TechSkills: in.TechSkills,
		SoftSkills: in.SoftSkills,
	})
	if err != nil {
		return err
	}

	s.base = p
	s.answers = Answers{}
	s.index = 0
	s.state = StateDeciding
	return nil
}

// AskMore starts the follow-up questions.
func (s *Session) AskMore() error {
	if s.state != StateDeciding {
		return s.transitionError("ask more questions")
	}
	if len(s.questions) == 0 {
		s.finalize()
		return nil
	}
	s.state = StateQuestioning
	return nil
}

// Skip finalizes the profile without follow-up answers.
func (s *Session) Skip() error {
	if s.state != StateDeciding {
		return s.transitionError("skip questions")
	}
	s.finalize()
	return nil
}

// Current returns the zero-based index and text of the pending question.
func (s *Session) Current() (int, string, bool) {
	if s.state != StateQuestioning {
		return 0, "", false
	}
	return s.index, s.questions[s.index], true
}

// Answer records the answer to the pending question. The session is
// finalized after the last question.
func (s *Session) Answer(text string) error {
	if s.state != StateQuestioning {
		return s.transitionError("answer question")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAnswer
	}

	s.answers.Set(s.questions[s.index], text)
	s.index++

	if s.index >= len(s.questions) {
		s.finalize()
	}
	return nil
}

// Progress returns how many follow-up questions were answered out of the total.
func (s *Session) Progress() (int, int) {
	return s.answers.Len(), len(s.questions)
}

// Profile returns the finalized profile.
func (s *Session) Profile() (*Profile, error) {
	if s.state != StateFinalized {
		return nil, fmt.Errorf("%w: session is %s", ErrNotFinalized, s.state)
	}
	return s.final, nil
}

func (s *Session) finalize() {
	s.final = s.base.withAnswers(s.answers)
	s.state = StateFinalized
}

func (s *Session) transitionError(action string) error {
	return fmt.Errorf("%s while %s: %w", action, s.state, ErrInvalidTransition)
}
