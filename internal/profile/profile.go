package profile

import (
	"fmt"
	"strings"
)

const (
	FieldEducation  = "educational_background"
	FieldInterests  = "interests"
	FieldTechSkills = "tech_skills"
	FieldSoftSkills = "soft_skills"
)

// Input is the raw form data as entered by the user.
type Input struct {
	Education  string `mapstructure:"educational_background" json:"educational_background" yaml:"educational_background"`
	Interests  string `mapstructure:"interests" json:"interests" yaml:"interests"`
	TechSkills string `mapstructure:"tech_skills" json:"tech_skills" yaml:"tech_skills"`
	SoftSkills string `mapstructure:"soft_skills" json:"soft_skills" yaml:"soft_skills"`
	Answers    []QA   `mapstructure:"answers" json:"answers,omitempty" yaml:"answers,omitempty"`
}

// ValidationError lists the profile fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile is incomplete: %s", strings.Join(e.Fields, ", "))
}

// Profile is a finalized user profile. It is never modified after creation.
type Profile struct {
	education  Education
	interests  Set
	techSkills Set
	softSkills Set
	answers    Answers
}

// New validates the input and builds a profile from it.
// Every core field must be non-empty after normalization.
func New(in Input) (*Profile, error) {
	var missing []string

	education, err := ParseEducation(in.Education)
	if err != nil {
		missing = append(missing, FieldEducation)
	}

	p := &Profile{
		education:  education,
		interests:  Normalize(in.Interests),
		techSkills: Normalize(in.TechSkills),
		softSkills: Normalize(in.SoftSkills),
	}

	if p.interests.Empty() {
		missing = append(missing, FieldInterests)
	}
	if p.techSkills.Empty() {
		missing = append(missing, FieldTechSkills)
	}
	if p.softSkills.Empty() {
		missing = append(missing, FieldSoftSkills)
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	for _, qa := range in.Answers {
		if strings.TrimSpace(qa.Answer) == "" {
			continue
		}
		p.answers.Set(qa.Question, strings.TrimSpace(qa.Answer))
	}

	return p, nil
}

func (p *Profile) withAnswers(answers Answers) *Profile {
	clone := *p
	clone.answers = answers.Clone()
	return &clone
}

func (p *Profile) Education() Education { return p.education }

func (p *Profile) Interests() Set { return p.interests }

func (p *Profile) TechSkills() Set { return p.techSkills }

func (p *Profile) SoftSkills() Set { return p.softSkills }

// Answers returns a copy of the follow-up answers.
func (p *Profile) Answers() Answers { return p.answers.Clone() }
