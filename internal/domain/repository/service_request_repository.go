package repository

import (
	"context"

	"taacheck/internal/domain/entity"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *entity.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error)
	Update(ctx context.Context, request *entity.ServiceRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.ServiceRequest, error)
	ListByRequester(ctx context.Context, userID string) ([]*entity.ServiceRequest, error)
}

type ProviderRequestRepository interface {
	Create(ctx context.Context, request *entity.ProviderRequest) error
	ListByReceiver(ctx context.Context, receiverID string) ([]*entity.ProviderRequest, error)
}
