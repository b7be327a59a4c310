package permissions

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
)

// TaskCatalogWarmup is the task type for permission catalog warmup jobs.
const TaskCatalogWarmup = "permissions:catalog_warmup"

// NewCatalogWarmupTask constructs an Asynq task that refreshes the cached
// permission catalog.
func NewCatalogWarmupTask() *asynq.Task {
	return asynq.NewTask(TaskCatalogWarmup, nil)
}

// WarmupJob keeps the hour-long catalog cache entry hot so interactive
// requests rarely pay the recomputation cost.
type WarmupJob struct {
	Resolver *Resolver
	Logger   *slog.Logger
}

// NewWarmupJob wires dependencies for the warmup handler.
func NewWarmupJob(resolver *Resolver, logger *slog.Logger) *WarmupJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &WarmupJob{Resolver: resolver, Logger: logger}
}

// Handle processes TaskCatalogWarmup tasks.
func (j *WarmupJob) Handle(ctx context.Context, _ *asynq.Task) error {
	if j == nil || j.Resolver == nil {
		return errors.New("permissions: warmup handler not configured")
	}
	catalog, err := j.Resolver.RefreshCatalog(ctx)
	if err != nil {
		j.Logger.Error("permission catalog warmup failed", slog.Any("error", err))
		return err
	}
	j.Logger.Info("permission catalog warmed", slog.Int("entity_types", len(catalog)))
	return nil
}
