package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taacheck/internal/domain/entity"
	"taacheck/pkg/errors"
)

type acceptanceFixture struct {
	userRepo        *fakeUserRepo
	requestRepo     *fakeServiceRequestRepo
	acceptanceRepo  *fakeAcceptanceRepo
	providerReqRepo *fakeProviderRequestRepo
	messageRepo     *fakeMessageRepo
	notifier        *fakeNotifier
	uc              *AcceptanceUseCase
}

func newAcceptanceFixture() *acceptanceFixture {
	userRepo := newFakeUserRepo()
	requestRepo := newFakeServiceRequestRepo()
	acceptanceRepo := newFakeAcceptanceRepo(userRepo, requestRepo)
	providerReqRepo := newFakeProviderRequestRepo()
	messageRepo := newFakeMessageRepo()
	notifier := newFakeNotifier()

	return &acceptanceFixture{
		userRepo:        userRepo,
		requestRepo:     requestRepo,
		acceptanceRepo:  acceptanceRepo,
		providerReqRepo: providerReqRepo,
		messageRepo:     messageRepo,
		notifier:        notifier,
		uc: NewAcceptanceUseCase(
			userRepo, acceptanceRepo, providerReqRepo, messageRepo, notifier,
		),
	}
}

func (f *acceptanceFixture) addProvider(id, code string, completedJobs int) *entity.User {
	provider := &entity.User{
		ID:            id,
		FullName:      "Otieno Electricals",
		Role:          entity.RoleServiceProvider,
		ServiceCode:   code,
		CompletedJobs: completedJobs,
	}
	f.userRepo.users[id] = provider
	return provider
}

func TestSubmitAcceptance(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code writes nothing", func(t *testing.T) {
		f := newAcceptanceFixture()
		f.addProvider("provider-1", "abcd1234", 0)

		_, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
			Name:       "Otieno Electricals",
			TaaCheckID: "wrong000",
			ReceiverID: "provider-1",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
		assert.Contains(t, err.Error(), "Invalid TaaCheck ID or not a registered service provider.")
		assert.Empty(t, f.acceptanceRepo.acceptances)
		assert.False(t, f.userRepo.users["provider-1"].HasNewNotification)
		assert.Empty(t, f.notifier.events)
	})

	t.Run("code of a different provider writes nothing", func(t *testing.T) {
		f := newAcceptanceFixture()
		f.addProvider("provider-1", "abcd1234", 0)
		f.addProvider("provider-2", "zzzz9999", 0)

		_, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
			TaaCheckID: "zzzz9999",
			ReceiverID: "provider-1",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
		assert.Empty(t, f.acceptanceRepo.acceptances)
	})

	t.Run("empty code writes nothing", func(t *testing.T) {
		f := newAcceptanceFixture()

		_, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{TaaCheckID: "   "})
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("matching code writes one acceptance and raises the flag", func(t *testing.T) {
		f := newAcceptanceFixture()
		f.addProvider("provider-1", "abcd1234", 0)

		acceptance, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
			Name:          "Otieno Electricals",
			TaaCheckID:    " abcd1234 ",
			Role:          "Electrician",
			BusinessPhone: "+254700000002",
			ReceiverID:    "provider-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "abcd1234", acceptance.TaaCheckID)
		assert.Equal(t, "requester-1", acceptance.SenderID)
		assert.Equal(t, "provider-1", acceptance.ReceiverID)
		assert.Equal(t, "Service request accepted by Otieno Electricals", acceptance.Description)
		assert.Len(t, f.acceptanceRepo.acceptances, 1)
		assert.True(t, f.userRepo.users["provider-1"].HasNewNotification)
		assert.Equal(t, 1, f.notifier.events["provider-1"])
	})
}

func TestAccept(t *testing.T) {
	ctx := context.Background()

	t.Run("settles counter, requests, acceptance and message together", func(t *testing.T) {
		f := newAcceptanceFixture()
		f.addProvider("provider-1", "abcd1234", 3)

		// One request directed at the requester, one unrelated.
		require.NoError(t, f.requestRepo.Create(ctx, &entity.ServiceRequest{
			UserID: "requester-1", Title: "Rewire kitchen", ReceiverID: "requester-1",
		}))
		require.NoError(t, f.requestRepo.Create(ctx, &entity.ServiceRequest{
			UserID: "someone-else", Title: "Install meter", ReceiverID: "someone-else",
		}))

		acceptance, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
			Name:       "Otieno Electricals",
			TaaCheckID: "abcd1234",
			ReceiverID: "provider-1",
		})
		require.NoError(t, err)

		require.NoError(t, f.uc.Accept(ctx, "provider-1", acceptance.ID))

		assert.Equal(t, 4, f.userRepo.users["provider-1"].CompletedJobs)
		assert.Zero(t, f.requestRepo.countByReceiver("requester-1"))
		assert.Equal(t, 1, f.requestRepo.countByReceiver("someone-else"))
		assert.Empty(t, f.acceptanceRepo.acceptances)

		messages := f.messageRepo.messages["provider-1"]
		require.Len(t, messages, 1)
		assert.Equal(t, "Your request has been accepted", messages[0].Text)
	})

	t.Run("only the receiver can accept", func(t *testing.T) {
		f := newAcceptanceFixture()
		f.addProvider("provider-1", "abcd1234", 0)

		acceptance, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
			TaaCheckID: "abcd1234",
			ReceiverID: "provider-1",
		})
		require.NoError(t, err)

		err = f.uc.Accept(ctx, "requester-1", acceptance.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "FORBIDDEN"))
		assert.Len(t, f.acceptanceRepo.acceptances, 1)
	})

	t.Run("missing acceptance is not found", func(t *testing.T) {
		f := newAcceptanceFixture()

		err := f.uc.Accept(ctx, "provider-1", "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestDecline(t *testing.T) {
	ctx := context.Background()
	f := newAcceptanceFixture()
	f.addProvider("provider-1", "abcd1234", 2)

	acceptance, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
		TaaCheckID: "abcd1234",
		ReceiverID: "provider-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Decline(ctx, "provider-1", acceptance.ID))

	assert.Empty(t, f.acceptanceRepo.acceptances)
	assert.Equal(t, 2, f.userRepo.users["provider-1"].CompletedJobs)

	receiverMessages := f.messageRepo.messages["provider-1"]
	require.Len(t, receiverMessages, 1)
	assert.Equal(t, "You have declined", receiverMessages[0].Text)

	senderMessages := f.messageRepo.messages["requester-1"]
	require.Len(t, senderMessages, 1)
	assert.Equal(t, "Your service offer was declined", senderMessages[0].Text)
}

func TestRequestProvider(t *testing.T) {
	ctx := context.Background()
	f := newAcceptanceFixture()
	f.addProvider("provider-1", "abcd1234", 0)
	f.userRepo.users["plain-user"] = &entity.User{ID: "plain-user", Role: entity.RoleUser}

	t.Run("files the request and notifies the provider", func(t *testing.T) {
		request, err := f.uc.RequestProvider(ctx, "requester-1", "provider-1", ProviderRequestInput{
			Name:     "Jane Wanjiku",
			Location: "Nairobi",
			Contact:  "+254700000001",
		})

		require.NoError(t, err)
		assert.Equal(t, "requester-1", request.SenderID)
		assert.Equal(t, "provider-1", request.ReceiverID)
		assert.True(t, f.userRepo.users["provider-1"].HasNewNotification)
	})

	t.Run("rejects targets that are not providers", func(t *testing.T) {
		_, err := f.uc.RequestProvider(ctx, "requester-1", "plain-user", ProviderRequestInput{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	f := newAcceptanceFixture()
	f.addProvider("provider-1", "abcd1234", 0)

	_, err := f.uc.SubmitAcceptance(ctx, "requester-1", AcceptanceInput{
		TaaCheckID: "abcd1234",
		ReceiverID: "provider-1",
	})
	require.NoError(t, err)
	require.True(t, f.userRepo.users["provider-1"].HasNewNotification)

	list, err := f.uc.ListNotifications(ctx, "provider-1")
	require.NoError(t, err)
	assert.Len(t, list.Acceptances, 1)
	assert.Empty(t, list.Requests)
	assert.False(t, f.userRepo.users["provider-1"].HasNewNotification)
}
