package schedule

import (
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dash/internal/domain/model"
	"weather-dash/internal/domain/usecase/weather"
	"weather-dash/pkg/log"
)

// RefreshScheduler periodically re-runs the last successful query so the
// dashboard state stays warm between user searches.
type RefreshScheduler struct {
	cron           *cron.Cron
	useCase        weather.UseCase
	cronExpression string
}

// NewRefreshScheduler creates a refresh scheduler. An empty cron
// expression disables it.
func NewRefreshScheduler(useCase weather.UseCase, cronExpression string) *RefreshScheduler {
	return &RefreshScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
	}
}

// InitRefreshScheduleTasks registers and starts the refresh task.
func (s *RefreshScheduler) InitRefreshScheduleTasks() {
	if s.cronExpression == "" {
		log.Info("Weather refresh scheduler disabled")
		return
	}

	_, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask)
	if err != nil {
		log.Errorf("Failed to initialize refresh scheduler, cron will not be started: %v", err)
		return
	}

	s.cron.Start()
	log.Infof("Weather refresh scheduler started with cron expression: %s", s.cronExpression)
}

// ExecuteScheduledTask re-fetches the last successfully queried city.
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	state := s.useCase.State()
	if state.Phase != model.PhaseReady || state.City == "" {
		log.Debug("No ready query to refresh", zap.String("request_id", requestID))
		return
	}

	log.Info("Refreshing weather for last queried city",
		zap.String("request_id", requestID),
		zap.String("city", state.City))

	refreshed := s.useCase.FetchWeather(state.City)
	if refreshed.Phase == model.PhaseFailed && refreshed.Error != nil {
		log.Warn("Scheduled refresh failed",
			zap.String("request_id", requestID),
			zap.String("city", state.City),
			zap.String("kind", string(refreshed.Error.Kind)))
	}
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
