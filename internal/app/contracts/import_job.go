package contracts

import (
	"context"
	"patient-sync-service/internal/app/models"
)

type ImportJobRepository interface {
	Insert(ctx context.Context, job *models.ImportJob) error
	Update(ctx context.Context, job *models.ImportJob) error
	FindByID(ctx context.Context, jobID string) (*models.ImportJob, error)
}

type ImportEventPublisher interface {
	Publish(ctx context.Context, event models.ImportEvent) error
}
