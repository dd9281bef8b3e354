package recommend

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/profile"
)

const coursesDataset = "courses"

// RecommendCourses returns up to limit courses whose name mentions an interest.
// Without such courses it falls back to names mentioning a word of the
// education category or a technical skill, capped at FallbackLimit.
func (e *Engine) RecommendCourses(courses []dataset.CourseRecord, p *profile.Profile, limit int) CourseResult {
	limit = normalizeLimit(limit)

	matched := filterCourses(courses, p.Interests().Values())
	e.logStep(coursesDataset, "interests", newStep(len(courses), len(matched)))

	if len(matched) > 0 {
		top := head(matched, limit)
		e.logStep(coursesDataset, "limit", newStep(len(matched), len(top)))
		return CourseResult{Outcome: OutcomeMatched, Courses: top}
	}

	keywords := append(p.Education().Words(), p.TechSkills().Values()...)
	fallback := filterCourses(courses, keywords)
	e.logStep(coursesDataset, "education_and_skills", newStep(len(courses), len(fallback)))

	if len(fallback) == 0 {
		e.logger.Info("no courses to recommend", zap.Int("dataset_size", len(courses)))
		return CourseResult{Outcome: OutcomeEmpty, Courses: []dataset.CourseRecord{}}
	}

	return CourseResult{Outcome: OutcomeFallback, Courses: head(fallback, FallbackLimit)}
}

// filterCourses keeps courses whose lowercased name contains any keyword.
func filterCourses(courses []dataset.CourseRecord, keywords []string) []dataset.CourseRecord {
	kept := make([]dataset.CourseRecord, 0)
	for _, course := range courses {
		name := strings.ToLower(course.Name)
		for _, keyword := range keywords {
			if keyword != "" && strings.Contains(name, keyword) {
				kept = append(kept, course)
				break
			}
		}
	}
	return kept
}
