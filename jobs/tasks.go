package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskCategoryRecount recomputes denormalized category item counts.
	TaskCategoryRecount = "category:recount"
)

// CategoryRecountPayload names the category to recount. An empty slug
// recounts every category.
type CategoryRecountPayload struct {
	Slug string `json:"slug"`
}

// NewCategoryRecountTask constructs an Asynq task.
func NewCategoryRecountTask(payload CategoryRecountPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCategoryRecount, data), nil
}

// Recounter recomputes item counts from the authoritative product rows.
type Recounter interface {
	Recount(ctx context.Context, slug string) error
}

// HandleCategoryRecount returns the handler for TaskCategoryRecount tasks.
func HandleCategoryRecount(logger *slog.Logger, recounter Recounter) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload CategoryRecountPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		if err := recounter.Recount(ctx, payload.Slug); err != nil {
			return err
		}
		if logger != nil {
			logger.Info("category recount done", "slug", payload.Slug)
		}
		return nil
	}
}
