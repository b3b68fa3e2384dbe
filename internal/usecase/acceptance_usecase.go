package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taacheck/internal/domain/entity"
	"taacheck/internal/domain/repository"
	"taacheck/pkg/errors"
	"taacheck/pkg/logger"
)

// AcceptanceUseCase drives the request → acceptance → accept/decline
// workflow, the only multi-step state transition in the system.
type AcceptanceUseCase struct {
	userRepo            repository.UserRepository
	acceptanceRepo      repository.AcceptanceRepository
	providerRequestRepo repository.ProviderRequestRepository
	messageRepo         repository.MessageRepository
	notifier            Notifier
}

func NewAcceptanceUseCase(
	userRepo repository.UserRepository,
	acceptanceRepo repository.AcceptanceRepository,
	providerRequestRepo repository.ProviderRequestRepository,
	messageRepo repository.MessageRepository,
	notifier Notifier,
) *AcceptanceUseCase {
	return &AcceptanceUseCase{
		userRepo:            userRepo,
		acceptanceRepo:      acceptanceRepo,
		providerRequestRepo: providerRequestRepo,
		messageRepo:         messageRepo,
		notifier:            notifier,
	}
}

type ProviderRequestInput struct {
	Name        string
	Location    string
	Contact     string
	Description string
}

type AcceptanceInput struct {
	Name          string
	TaaCheckID    string
	Role          string
	BusinessPhone string
	Email         string
	ReceiverID    string
}

type NotificationList struct {
	Acceptances []*entity.Acceptance      `json:"acceptances"`
	Requests    []*entity.ProviderRequest `json:"requests"`
}

// RequestProvider files a direct request against a provider and raises their
// notification flag.
func (uc *AcceptanceUseCase) RequestProvider(ctx context.Context, uid, providerID string, input ProviderRequestInput) (*entity.ProviderRequest, error) {
	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, errors.NotFound("Service provider", err)
	}
	if !provider.IsProvider() {
		return nil, errors.NotFound("Service provider", nil)
	}

	request := &entity.ProviderRequest{
		Name:        input.Name,
		Location:    input.Location,
		Contact:     input.Contact,
		Description: input.Description,
		SenderID:    uid,
		ReceiverID:  providerID,
		Timestamp:   time.Now().UnixMilli(),
	}

	if err := uc.providerRequestRepo.Create(ctx, request); err != nil {
		return nil, errors.Internal("Failed to send request", err)
	}

	uc.raiseNotification(ctx, providerID)

	return request, nil
}

// SubmitAcceptance is the validation gate in front of the acceptance
// document. The entered code must resolve to a provider-role profile, and
// that profile must be the targeted receiver; otherwise nothing is written
// and the receiver's notification flag stays untouched. Nothing prevents the
// same sender from submitting twice.
func (uc *AcceptanceUseCase) SubmitAcceptance(ctx context.Context, uid string, input AcceptanceInput) (*entity.Acceptance, error) {
	code := strings.TrimSpace(input.TaaCheckID)
	if code == "" {
		return nil, errors.BadRequest("Invalid TaaCheck ID or not a registered service provider.", nil)
	}

	provider, err := uc.userRepo.GetByServiceCode(ctx, code)
	if err != nil || provider == nil || provider.ID != input.ReceiverID {
		return nil, errors.BadRequest("Invalid TaaCheck ID or not a registered service provider.", err)
	}

	acceptance := &entity.Acceptance{
		Name:          input.Name,
		TaaCheckID:    code,
		Role:          input.Role,
		BusinessPhone: input.BusinessPhone,
		Email:         input.Email,
		Description:   fmt.Sprintf("Service request accepted by %s", input.Name),
		SenderID:      uid,
		ReceiverID:    input.ReceiverID,
		Timestamp:     time.Now().UnixMilli(),
	}

	if err := uc.acceptanceRepo.Create(ctx, acceptance); err != nil {
		return nil, errors.Internal("Failed to submit acceptance", err)
	}

	uc.raiseNotification(ctx, input.ReceiverID)

	return acceptance, nil
}

// ListNotifications clears the caller's notification flag and returns their
// pending acceptances and direct requests.
func (uc *AcceptanceUseCase) ListNotifications(ctx context.Context, uid string) (*NotificationList, error) {
	if err := uc.userRepo.SetNotificationFlag(ctx, uid, false); err != nil {
		logger.Warn("Failed to clear notification flag for %s: %v", uid, err)
	}

	acceptances, err := uc.acceptanceRepo.ListByReceiver(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load notifications", err)
	}

	requests, err := uc.providerRequestRepo.ListByReceiver(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load notifications", err)
	}

	return &NotificationList{
		Acceptances: acceptances,
		Requests:    requests,
	}, nil
}

// Accept settles the acceptance: completed-job counter up, all service
// requests directed at the requester removed, acceptance removed, and a
// confirmation message appended. The settle runs in one transaction; a
// message append failure after commit is logged, not reported.
func (uc *AcceptanceUseCase) Accept(ctx context.Context, uid, acceptanceID string) error {
	acceptance, err := uc.acceptanceRepo.GetByID(ctx, acceptanceID)
	if err != nil {
		return errors.NotFound("Acceptance", err)
	}

	if acceptance.ReceiverID != uid {
		return errors.Forbidden("You don't have permission to settle this acceptance", nil)
	}

	if err := uc.acceptanceRepo.Settle(ctx, acceptance); err != nil {
		return errors.Internal("Failed to accept", err)
	}

	uc.appendMessage(ctx, acceptance.ReceiverID, "Your request has been accepted")

	return nil
}

// Decline removes the acceptance and notifies both parties.
func (uc *AcceptanceUseCase) Decline(ctx context.Context, uid, acceptanceID string) error {
	acceptance, err := uc.acceptanceRepo.GetByID(ctx, acceptanceID)
	if err != nil {
		return errors.NotFound("Acceptance", err)
	}

	if acceptance.ReceiverID != uid {
		return errors.Forbidden("You don't have permission to settle this acceptance", nil)
	}

	if err := uc.acceptanceRepo.Delete(ctx, acceptanceID); err != nil {
		return errors.Internal("Failed to decline", err)
	}

	uc.appendMessage(ctx, acceptance.ReceiverID, "You have declined")
	uc.appendMessage(ctx, acceptance.SenderID, "Your service offer was declined")

	return nil
}

func (uc *AcceptanceUseCase) raiseNotification(ctx context.Context, uid string) {
	if err := uc.userRepo.SetNotificationFlag(ctx, uid, true); err != nil {
		logger.Warn("Failed to set notification flag for %s: %v", uid, err)
		return
	}

	if uc.notifier != nil {
		uc.notifier.NotifyUser(uid, map[string]interface{}{
			"type":      "notification",
			"timestamp": time.Now().UnixMilli(),
		})
	}
}

func (uc *AcceptanceUseCase) appendMessage(ctx context.Context, uid, text string) {
	message := &entity.Message{
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := uc.messageRepo.Append(ctx, uid, message); err != nil {
		logger.Warn("Failed to append message for %s: %v", uid, err)
	}
}
