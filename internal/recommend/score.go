package recommend

import (
	"strings"

	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/profile"
)

const (
	WeightEducation = 2
	WeightTechSkill = 3
	WeightSoftSkill = 1
	WeightInterest  = 2
	WeightAnswer    = 2

	MaxScore = WeightEducation + WeightTechSkill + WeightSoftSkill + WeightInterest + WeightAnswer
)

// Signals tells which weighted checks fired for a job.
type Signals struct {
	Education bool `json:"education"`
	TechSkill bool `json:"tech_skill"`
	SoftSkill bool `json:"soft_skill"`
	Interest  bool `json:"interest"`
	Answer    bool `json:"answer"`
}

func (s Signals) Score() int {
	score := 0
	if s.Education {
		score += WeightEducation
	}
	if s.TechSkill {
		score += WeightTechSkill
	}
	if s.SoftSkill {
		score += WeightSoftSkill
	}
	if s.Interest {
		score += WeightInterest
	}
	if s.Answer {
		score += WeightAnswer
	}
	return score
}

// Names lists the fired signals in weight table order.
func (s Signals) Names() []string {
	var names []string
	if s.Education {
		names = append(names, "education")
	}
	if s.TechSkill {
		names = append(names, "tech_skill")
	}
	if s.SoftSkill {
		names = append(names, "soft_skill")
	}
	if s.Interest {
		names = append(names, "interest")
	}
	if s.Answer {
		names = append(names, "answer")
	}
	return names
}

// ScoredJob is a job with its score, computed per request.
type ScoredJob struct {
	Job     dataset.JobRecord `json:"job"`
	Score   int               `json:"score"`
	Signals Signals           `json:"signals"`
}

type loweredJob struct {
	title          string
	description    string
	qualifications string
	skills         string
	role           string
}

func lower(job dataset.JobRecord) loweredJob {
	return loweredJob{
		title:          strings.ToLower(job.Title),
		description:    strings.ToLower(job.Description),
		qualifications: strings.ToLower(job.Qualifications),
		skills:         strings.ToLower(job.Skills),
		role:           strings.ToLower(job.Role),
	}
}

// Signals evaluates every weighted check of job against the profile and answers.
func (e *Engine) Signals(job dataset.JobRecord, p *profile.Profile, answers profile.Answers) Signals {
	j := lower(job)
	education := p.Education().Lower()

	return Signals{
		Education: strings.Contains(j.qualifications, education) || strings.Contains(j.description, education),
		TechSkill: p.TechSkills().Any(func(skill string) bool {
			return strings.Contains(j.skills, skill)
		}),
		SoftSkill: p.SoftSkills().Any(func(skill string) bool {
			return e.either(j.description, j.role, skill)
		}),
		Interest: p.Interests().Any(func(interest string) bool {
			return e.either(j.title, j.description, interest)
		}),
		Answer: anyToken(answers.Tokens(), func(token string) bool {
			return e.either(j.description, j.qualifications, token)
		}),
	}
}

// either checks needle against primary, then against secondary according to the mode.
func (e *Engine) either(primary, secondary, needle string) bool {
	if strings.Contains(primary, needle) {
		return true
	}
	if e.mode == ModeStrict {
		return strings.Contains(secondary, needle)
	}
	return secondary != ""
}

func anyToken(tokens []string, fn func(string) bool) bool {
	for _, token := range tokens {
		if fn(token) {
			return true
		}
	}
	return false
}

// ScoreJob returns the weighted score of job in the range [0, MaxScore].
func (e *Engine) ScoreJob(job dataset.JobRecord, p *profile.Profile, answers profile.Answers) int {
	return e.Signals(job, p, answers).Score()
}

// IsRecommended reports whether job reaches Threshold.
func (e *Engine) IsRecommended(job dataset.JobRecord, p *profile.Profile, answers profile.Answers) bool {
	return e.ScoreJob(job, p, answers) >= Threshold
}

// ScoreJobs scores every job in dataset order.
func (e *Engine) ScoreJobs(jobs []dataset.JobRecord, p *profile.Profile, answers profile.Answers) []ScoredJob {
	scored := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		signals := e.Signals(job, p, answers)
		scored = append(scored, ScoredJob{Job: job, Score: signals.Score(), Signals: signals})
	}
	return scored
}
