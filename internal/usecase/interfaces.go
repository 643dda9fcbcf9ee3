package usecase

import (
	"context"

	"github.com/santaan/crm-api/internal/entity"
	"github.com/santaan/crm-api/internal/infra/queue"
)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Contact) error
	FindByEmail(ctx context.Context, email string) (*entity.Contact, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Contact, error)
	CountByRole(ctx context.Context) (map[string]int, error)
}

type AdminUserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

type EventProducerInterface interface {
	PublishContactCaptured(ctx context.Context, payload queue.ContactCapturedPayload) error
}
