package usecase

import (
	"context"
	"strings"
	"time"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
	"taacheck/pkg/errors"
)

type ServiceRequestUseCase struct {
	requestRepo repository.ServiceRequestRepository
}

func NewServiceRequestUseCase(requestRepo repository.ServiceRequestRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		requestRepo: requestRepo,
	}
}

type ServiceRequestInput struct {
	Title       string
	Description string
	LocationTag string
}

// List returns open requests, newest first. A non-empty region narrows the
// result to exact case-insensitive county matches; Firestore cannot compare
// case-insensitively, so the filter runs over the fetched list.
func (uc *ServiceRequestUseCase) List(ctx context.Context, region string) ([]*entity.ServiceRequest, error) {
	requests, err := uc.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load service requests", err)
	}

	return FilterByRegion(requests, region), nil
}

// FilterByRegion narrows requests to those whose county tag equals region,
// ignoring case. An empty region returns the list untouched.
func FilterByRegion(requests []*entity.ServiceRequest, region string) []*entity.ServiceRequest {
	if region == "" {
		return requests
	}

	filtered := make([]*entity.ServiceRequest, 0, len(requests))
	for _, request := range requests {
		if strings.EqualFold(request.LocationTag, region) {
			filtered = append(filtered, request)
		}
	}
	return filtered
}

func (uc *ServiceRequestUseCase) ListMine(ctx context.Context, uid string) ([]*entity.ServiceRequest, error) {
	requests, err := uc.requestRepo.ListByRequester(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load service requests", err)
	}
	return requests, nil
}

func (uc *ServiceRequestUseCase) Get(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Service request", err)
	}
	return request, nil
}

func (uc *ServiceRequestUseCase) Create(ctx context.Context, uid string, input ServiceRequestInput) (*entity.ServiceRequest, error) {
	request := &entity.ServiceRequest{
		UserID:      uid,
		Title:       input.Title,
		Description: input.Description,
		LocationTag: input.LocationTag,
		Timestamp:   time.Now().UnixMilli(),
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Internal("Failed to save service request", err)
	}

	return request, nil
}

func (uc *ServiceRequestUseCase) Update(ctx context.Context, uid, requestID string, input ServiceRequestInput) (*entity.ServiceRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, errors.NotFound("Service request", err)
	}

	if request.UserID != uid {
		return nil, errors.Forbidden("You don't have permission to update this request", nil)
	}

	request.Title = input.Title
	request.Description = input.Description
	request.LocationTag = input.LocationTag
	request.Timestamp = time.Now().UnixMilli()

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, errors.Internal("Failed to update service request", err)
	}

	return request, nil
}

func (uc *ServiceRequestUseCase) Delete(ctx context.Context, uid, requestID string) error {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return errors.NotFound("Service request", err)
	}

	if request.UserID != uid {
		return errors.Forbidden("You don't have permission to delete this request", nil)
	}

	if err := uc.requestRepo.Delete(ctx, requestID); err != nil {
		return errors.Internal("Failed to delete service request", err)
	}

	return nil
}
