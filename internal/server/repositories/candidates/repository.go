package candidates

import (
	"context"

	"github.com/dmitrijs2005/candidatetracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Application) error
	List(ctx context.Context) ([]*models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	MarkViewed(ctx context.Context, id string) error
	SetResumeKey(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}
