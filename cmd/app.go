package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/ai/gemini"
	"github.com/spigell/career-compass/internal/dataset"
	"github.com/spigell/career-compass/internal/export"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/profile"
	"github.com/spigell/career-compass/internal/recommend"
	"github.com/spigell/career-compass/internal/secrets"
)

// application holds everything a session needs once config is read.
type application struct {
	config    *Config
	logger    *zap.Logger
	sessionID string
	engine    *recommend.Engine
	jobs      *dataset.Jobs
	courses   *dataset.Courses
	advisor   ai.Advisor
	now       func() time.Time
}

func newApplication(ctx context.Context, config *Config, log *zap.Logger) (*application, error) {
	sessionID := uuid.NewString()
	log = logger.WithSession(log, sessionID)

	mode, err := recommend.ParseMode(config.Recommend.MatchMode)
	if err != nil {
		return nil, err
	}

	jobs, err := dataset.LoadJobs(config.Datasets.Jobs)
	if err != nil {
		return nil, fmt.Errorf("loading jobs dataset: %w", err)
	}
	log.Info("loaded jobs dataset", zap.String("path", config.Datasets.Jobs), zap.Int("count", jobs.Len()))

	courses, err := dataset.LoadCourses(config.Datasets.Courses)
	if err != nil {
		return nil, fmt.Errorf("loading courses dataset: %w", err)
	}
	log.Info("loaded courses dataset", zap.String("path", config.Datasets.Courses), zap.Int("count", courses.Len()))

	a := &application{
		config:    config,
		logger:    log,
		sessionID: sessionID,
		engine:    recommend.New(recommend.WithMode(mode), recommend.WithLogger(log)),
		jobs:      jobs,
		courses:   courses,
		now:       time.Now,
	}

	if config.AI.Enabled {
		advisor, err := newAdvisor(ctx, config.AI, log)
		if err != nil {
			log.Warn("skipping ai advice", zap.Error(err))
		} else {
			a.advisor = advisor
		}
	}

	return a, nil
}

func newAdvisor(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Advisor, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries,
		log.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries)))
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.WithCommonFields(log, gemini.Provider, generator.Model())
	return gemini.NewAdvisor(generator, advisorLogger, cfg.Gemini.MaxLogLength), nil
}

// recommend runs both recommenders over the loaded datasets and bundles the result.
func (a *application) recommend(ctx context.Context, p *profile.Profile) *export.Report {
	answers := p.Answers()

	jobs := a.engine.RecommendJobs(a.jobs.Items, p, answers, a.config.Recommend.JobLimit)
	courses := a.engine.RecommendCourses(a.courses.Items, p, a.config.Recommend.CourseLimit)

	report := &export.Report{
		SessionID:       a.sessionID,
		GeneratedAt:     a.now(),
		MatchMode:       a.engine.Mode(),
		Profile:         export.NewProfile(p),
		Jobs:            jobs,
		Courses:         courses,
		UniversitiesURL: profile.UniversitiesURL,
	}

	if a.advisor != nil {
		advice, err := a.advisor.Advise(ctx, &ai.Request{Profile: p, Jobs: jobs.Jobs, Courses: courses.Courses})
		if err != nil {
			a.logger.Warn("ai advice failed", zap.Error(err))
		} else {
			report.Advice = advice.Text
		}
	}

	return report
}
