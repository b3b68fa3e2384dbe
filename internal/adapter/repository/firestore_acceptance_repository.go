package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
)

type firestoreAcceptanceRepository struct {
	client *firestore.Client
}

func NewFirestoreAcceptanceRepository(client *firestore.Client) repository.AcceptanceRepository {
	return &firestoreAcceptanceRepository{
		client: client,
	}
}

func (r *firestoreAcceptanceRepository) Create(ctx context.Context, acceptance *entity.Acceptance) error {
	ref, _, err := r.client.Collection("acceptances").Add(ctx, acceptance)
	if err != nil {
		return err
	}
	acceptance.ID = ref.ID
	return nil
}

func (r *firestoreAcceptanceRepository) GetByID(ctx context.Context, id string) (*entity.Acceptance, error) {
	doc, err := r.client.Collection("acceptances").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var acceptance entity.Acceptance
	if err := doc.DataTo(&acceptance); err != nil {
		return nil, err
	}
	acceptance.ID = doc.Ref.ID

	return &acceptance, nil
}

func (r *firestoreAcceptanceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("acceptances").Doc(id).Delete(ctx)
	return err
}

func (r *firestoreAcceptanceRepository) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Acceptance, error) {
	query := r.client.Collection("acceptances").Where("receiverId", "==", receiverID)
	iter := query.Documents(ctx)

	var acceptances []*entity.Acceptance
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var acceptance entity.Acceptance
		if err := doc.DataTo(&acceptance); err != nil {
			return nil, err
		}
		acceptance.ID = doc.Ref.ID
		acceptances = append(acceptances, &acceptance)
	}
	return acceptances, nil
}

// Settle commits the accept sequence atomically: bump the receiver's
// completed-job counter, delete every service request directed at the
// requester, and delete the acceptance document. All reads happen before any
// write, as Firestore transactions require.
func (r *firestoreAcceptanceRepository) Settle(ctx context.Context, acceptance *entity.Acceptance) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		requestsQuery := r.client.Collection("service_requests").
			Where("receiverId", "==", acceptance.SenderID)
		docs, err := tx.Documents(requestsQuery).GetAll()
		if err != nil {
			return err
		}

		receiverRef := r.client.Collection("users").Doc(acceptance.ReceiverID)
		if err := tx.Update(receiverRef, []firestore.Update{
			{Path: "completedJobs", Value: firestore.Increment(1)},
		}); err != nil {
			return err
		}

		for _, doc := range docs {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}

		return tx.Delete(r.client.Collection("acceptances").Doc(acceptance.ID))
	})
}

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Append(ctx context.Context, userID string, message *entity.Message) error {
	ref, _, err := r.client.Collection("users").Doc(userID).Collection("messages").Add(ctx, message)
	if err != nil {
		return err
	}
	message.ID = ref.ID
	return nil
}

func (r *firestoreMessageRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	query := r.client.Collection("users").Doc(userID).Collection("messages").
		OrderBy("timestamp", firestore.Desc)
	iter := query.Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, err
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}
	return messages, nil
}
