package recommend

import (
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/profile"
)

const jobsDataset = "jobs"

// RecommendJobs returns up to limit recommended jobs with unique titles in
// dataset order. When nothing reaches the threshold the first FallbackLimit
// unique jobs of the dataset are returned instead.
func (e *Engine) RecommendJobs(jobs []dataset.JobRecord, p *profile.Profile, answers profile.Answers, limit int) JobResult {
	limit = normalizeLimit(limit)

	matched := make([]dataset.JobRecord, 0)
	for _, job := range jobs {
		if e.IsRecommended(job, p, answers) {
			matched = append(matched, job)
		}
	}
	e.logStep(jobsDataset, "score_threshold", newStep(len(jobs), len(matched)))

	unique := uniqueByTitle(matched)
	e.logStep(jobsDataset, "unique_titles", newStep(len(matched), len(unique)))

	if len(unique) > 0 {
		top := head(unique, limit)
		e.logStep(jobsDataset, "limit", newStep(len(unique), len(top)))
		return JobResult{Outcome: OutcomeMatched, Jobs: top}
	}

	fallback := head(uniqueByTitle(jobs), FallbackLimit)
	if len(fallback) == 0 {
		e.logger.Info("no jobs to recommend", zap.Int("dataset_size", len(jobs)))
		return JobResult{Outcome: OutcomeEmpty, Jobs: []dataset.JobRecord{}}
	}

	e.logger.Info("no jobs matched the profile, using general recommendations",
		zap.Int("dataset_size", len(jobs)),
		zap.Int("fallback", len(fallback)),
	)
	return JobResult{Outcome: OutcomeFallback, Jobs: fallback}
}

// uniqueByTitle keeps the first job for every title.
func uniqueByTitle(jobs []dataset.JobRecord) []dataset.JobRecord {
	seen := make(map[string]struct{}, len(jobs))
	unique := make([]dataset.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := seen[job.Title]; ok {
			continue
		}
		seen[job.Title] = struct{}{}
		unique = append(unique, job)
	}
	return unique
}
