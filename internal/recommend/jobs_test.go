package recommend

import (
	"fmt"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/profile"
)

func titles(jobs []dataset.JobRecord) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Title)
	}
	return out
}

func matchingJob(title string) dataset.JobRecord {
	job := mlEngineer
	job.Title = title
	return job
}

func nonMatchingJob(title string) dataset.JobRecord {
	return dataset.JobRecord{Title: title, Skills: "cooking"}
}

func TestRecommendJobsMatched(t *testing.T) {
	e := New(WithMode(ModeStrict))
	jobs := []dataset.JobRecord{
		nonMatchingJob("Chef"),
		matchingJob("ML Engineer"),
		matchingJob("Data Engineer"),
		matchingJob("ML Engineer"),
		nonMatchingJob("Baker"),
		matchingJob("AI Researcher"),
	}

	result := e.RecommendJobs(jobs, csProfile(t), profile.Answers{}, 0)

	if result.Outcome != OutcomeMatched {
		t.Fatalf("expected matched outcome, got %s", result.Outcome)
	}

	expected := []string{"ML Engineer", "Data Engineer", "AI Researcher"}
	if got := titles(result.Jobs); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestRecommendJobsLimitAndUniqueTitles(t *testing.T) {
	e := New(WithMode(ModeStrict))

	var jobs []dataset.JobRecord
	for i := 0; i < 10; i++ {
		jobs = append(jobs, matchingJob(fmt.Sprintf("Engineer %d", i%7)))
	}

	for _, limit := range []int{1, 3, 5, 7, 20} {
		result := e.RecommendJobs(jobs, csProfile(t), profile.Answers{}, limit)

		want := limit
		if want > 7 {
			want = 7
		}
		if len(result.Jobs) != want {
			t.Fatalf("limit %d: expected %d jobs, got %d", limit, want, len(result.Jobs))
		}

		seen := map[string]bool{}
		for _, job := range result.Jobs {
			if seen[job.Title] {
				t.Fatalf("limit %d: duplicate title %q", limit, job.Title)
			}
			seen[job.Title] = true
		}
	}

	if got := len(e.RecommendJobs(jobs, csProfile(t), profile.Answers{}, -1).Jobs); got != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, got)
	}
}

// Dataset order is kept even when a later job scores higher.
func TestRecommendJobsKeepsDatasetOrder(t *testing.T) {
	e := New(WithMode(ModeStrict))
	p := csProfile(t)

	weaker := dataset.JobRecord{Title: "Data Analyst", Skills: "sql", Qualifications: "computer science"}
	stronger := matchingJob("ML Engineer")
	if e.ScoreJob(weaker, p, profile.Answers{}) >= e.ScoreJob(stronger, p, profile.Answers{}) {
		t.Fatalf("fixture must score lower than the second job")
	}

	result := e.RecommendJobs([]dataset.JobRecord{weaker, stronger}, p, profile.Answers{}, 5)
	if got := titles(result.Jobs); !reflect.DeepEqual(got, []string{"Data Analyst", "ML Engineer"}) {
		t.Fatalf("unexpected order: %q", got)
	}
}

func TestRecommendJobsFallback(t *testing.T) {
	e := New(WithMode(ModeStrict))
	jobs := []dataset.JobRecord{
		nonMatchingJob("Chef"),
		nonMatchingJob("Chef"),
		nonMatchingJob("Baker"),
		nonMatchingJob("Waiter"),
		nonMatchingJob("Barista"),
	}

	result := e.RecommendJobs(jobs, csProfile(t), profile.Answers{}, 5)

	if result.Outcome != OutcomeFallback {
		t.Fatalf("expected fallback outcome, got %s", result.Outcome)
	}
	if got := titles(result.Jobs); !reflect.DeepEqual(got, []string{"Chef", "Baker", "Waiter"}) {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestRecommendJobsNonMatchingTechSkillsNeverRecommends(t *testing.T) {
	e := New(WithMode(ModeStrict))
	p := mustProfile(t, profile.Input{
		Education:  "Other",
		Interests:  "astronomy",
		TechSkills: "cobol,",
		SoftSkills: "patience",
	})

	jobs := []dataset.JobRecord{mlEngineer, {Title: "Chef", Description: "cooking", Skills: "knives"}}
	for _, job := range jobs {
		if e.IsRecommended(job, p, profile.Answers{}) {
			t.Fatalf("job %q must not be recommended", job.Title)
		}
	}

	if result := e.RecommendJobs(jobs, p, profile.Answers{}, 5); result.Outcome != OutcomeFallback {
		t.Fatalf("expected fallback outcome, got %s", result.Outcome)
	}
}

func TestRecommendJobsEmptyDataset(t *testing.T) {
	result := New().RecommendJobs(nil, csProfile(t), profile.Answers{}, 5)

	if result.Outcome != OutcomeEmpty {
		t.Fatalf("expected empty outcome, got %s", result.Outcome)
	}
	if result.Jobs == nil || len(result.Jobs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", result.Jobs)
	}
}

func TestRecommendJobsDoesNotMutateDataset(t *testing.T) {
	jobs := []dataset.JobRecord{matchingJob("A"), matchingJob("A"), matchingJob("B")}
	snapshot := append([]dataset.JobRecord(nil), jobs...)

	result := New().RecommendJobs(jobs, csProfile(t), profile.Answers{}, 1)
	result.Jobs[0].Title = "changed"

	if !reflect.DeepEqual(jobs, snapshot) {
		t.Fatalf("dataset was mutated: %+v", jobs)
	}
}

func TestRecommendJobsLogsSteps(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	e := New(WithLogger(zap.New(core)), WithMode(ModeStrict))

	jobs := []dataset.JobRecord{matchingJob("A"), matchingJob("A"), nonMatchingJob("C")}
	e.RecommendJobs(jobs, csProfile(t), profile.Answers{}, 5)

	steps := observed.FilterMessage("recommendation step").All()
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}

	first := steps[0].ContextMap()
	if first["name"] != "score_threshold" || first["initial"] != int64(3) || first["dropped"] != int64(1) || first["left"] != int64(2) {
		t.Fatalf("unexpected score step: %+v", first)
	}

	second := steps[1].ContextMap()
	if second["name"] != "unique_titles" || second["left"] != int64(1) {
		t.Fatalf("unexpected unique step: %+v", second)
	}
}
