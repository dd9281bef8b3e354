package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spigell/career-compass/internal/profile"
	"github.com/spigell/career-compass/internal/recommend"
)

// Report is everything shown to the user at the end of a session.
type Report struct {
	SessionID       string                 `json:"session_id"`
	GeneratedAt     time.Time              `json:"generated_at"`
	MatchMode       recommend.Mode         `json:"match_mode"`
	Profile         Profile                `json:"profile"`
	Jobs            recommend.JobResult    `json:"jobs"`
	Courses         recommend.CourseResult `json:"courses"`
	Advice          string                 `json:"advice,omitempty"`
	UniversitiesURL string                 `json:"universities_url"`
}

// Profile is a serializable snapshot of a finalized profile.
type Profile struct {
	Education  string       `json:"educational_background"`
	Interests  []string     `json:"interests"`
	TechSkills []string     `json:"tech_skills"`
	SoftSkills []string     `json:"soft_skills"`
	Answers    []profile.QA `json:"answers,omitempty"`
}

func NewProfile(p *profile.Profile) Profile {
	return Profile{
		Education:  string(p.Education()),
		Interests:  p.Interests().Values(),
		TechSkills: p.TechSkills().Values(),
		SoftSkills: p.SoftSkills().Values(),
		Answers:    p.Answers().Items(),
	}
}

// DumpToTmpFile writes the report as indented JSON to a new temporary file.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "career-compass_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
