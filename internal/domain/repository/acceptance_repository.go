package repository

import (
	"context"

	"taacheck/internal/domain/entity"
)

type AcceptanceRepository interface {
	Create(ctx context.Context, acceptance *entity.Acceptance) error
	GetByID(ctx context.Context, id string) (*entity.Acceptance, error)
	Delete(ctx context.Context, id string) error
	ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Acceptance, error)

	// Settle runs the accept sequence as a single unit: increment the
	// receiver's completed-job counter, remove every service request directed
	// at the requester, and remove the acceptance itself.
	Settle(ctx context.Context, acceptance *entity.Acceptance) error
}

type MessageRepository interface {
	Append(ctx context.Context, userID string, message *entity.Message) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Message, error)
}
