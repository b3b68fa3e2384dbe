package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
)

type firestoreServiceRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceRequestRepository(client *firestore.Client) repository.ServiceRequestRepository {
	return &firestoreServiceRequestRepository{
		client: client,
	}
}

func (r *firestoreServiceRequestRepository) Create(ctx context.Context, request *entity.ServiceRequest) error {
	ref, _, err := r.client.Collection("service_requests").Add(ctx, request)
	if err != nil {
		return err
	}
	request.ID = ref.ID
	return nil
}

func (r *firestoreServiceRequestRepository) GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	doc, err := r.client.Collection("service_requests").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var request entity.ServiceRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, err
	}
	request.ID = doc.Ref.ID

	return &request, nil
}

func (r *firestoreServiceRequestRepository) Update(ctx context.Context, request *entity.ServiceRequest) error {
	_, err := r.client.Collection("service_requests").Doc(request.ID).Set(ctx, request)
	return err
}

func (r *firestoreServiceRequestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("service_requests").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreServiceRequestRepository) List(ctx context.Context) ([]*entity.ServiceRequest, error) {
	query := r.client.Collection("service_requests").OrderBy("timestamp", firestore.Desc)
	return r.collectRequests(query.Documents(ctx))
}

func (r *firestoreServiceRequestRepository) ListByRequester(ctx context.Context, userID string) ([]*entity.ServiceRequest, error) {
	query := r.client.Collection("service_requests").Where("userId", "==", userID)
	return r.collectRequests(query.Documents(ctx))
}

func (r *firestoreServiceRequestRepository) collectRequests(iter *firestore.DocumentIterator) ([]*entity.ServiceRequest, error) {
	var requests []*entity.ServiceRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var request entity.ServiceRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, err
		}
		request.ID = doc.Ref.ID
		requests = append(requests, &request)
	}
	return requests, nil
}

type firestoreProviderRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreProviderRequestRepository(client *firestore.Client) repository.ProviderRequestRepository {
	return &firestoreProviderRequestRepository{
		client: client,
	}
}

func (r *firestoreProviderRequestRepository) Create(ctx context.Context, request *entity.ProviderRequest) error {
	ref, _, err := r.client.Collection("requests").Add(ctx, request)
	if err != nil {
		return err
	}
	request.ID = ref.ID
	return nil
}

func (r *firestoreProviderRequestRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.ProviderRequest, error) {
	query := r.client.Collection("requests").Where("receiverId", "==", receiverID)
	iter := query.Documents(ctx)

	var requests []*entity.ProviderRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var request entity.ProviderRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, err
		}
		request.ID = doc.Ref.ID
		requests = append(requests, &request)
	}
	return requests, nil
}
