package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"taacheck/internal/domain/entity"
)

// In-memory doubles for the Firestore repositories and the Firebase auth
// client. They return plain errors for missing documents, the same shape the
// usecases see from the real adapters.

var errFakeNotFound = errors.New("document not found")

type fakeUserRepo struct {
	users    map[string]*entity.User
	getError error // forces GetByID to fail, for the routing-gate tests
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.getError != nil {
		return nil, r.getError
	}
	user, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) GetByServiceCode(ctx context.Context, code string) (*entity.User, error) {
	for _, user := range r.users {
		if user.ServiceCode == code && user.Role == entity.RoleServiceProvider {
			return user, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errFakeNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	var users []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	total := int64(len(users))
	if offset > 0 {
		if offset >= len(users) {
			return nil, total, nil
		}
		users = users[offset:]
	}
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}
	return users, total, nil
}

func (r *fakeUserRepo) SetNotificationFlag(ctx context.Context, id string, value bool) error {
	user, ok := r.users[id]
	if !ok {
		return errFakeNotFound
	}
	user.HasNewNotification = value
	return nil
}

type fakeAuthClient struct {
	passwords map[string]string // email -> password
	uids      map[string]string // email -> uid
	tokens    map[string]string // token -> uid
	signedOut []string
	created   int
	nextUID   int
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		passwords: make(map[string]string),
		uids:      make(map[string]string),
		tokens:    make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.created++
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.passwords[email] = password
	f.uids[email] = uid
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := f.tokens[token]
	if !ok {
		return "", errors.New("invalid token")
	}
	return uid, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	stored, ok := f.passwords[email]
	if !ok || stored != password {
		return "", errors.New("invalid credentials")
	}
	token := "token-" + email
	f.tokens[token] = f.uids[email]
	return token, nil
}

func (f *fakeAuthClient) SignOut(ctx context.Context, uid string) error {
	f.signedOut = append(f.signedOut, uid)
	return nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return nil
}

type fakePostRepo struct {
	posts  map[string]*entity.Post
	likes  map[string]map[string]bool // post id -> liker set
	nextID int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: make(map[string]*entity.Post),
		likes: make(map[string]map[string]bool),
	}
}

func (r *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	r.nextID++
	post.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *entity.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return errFakeNotFound
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	var posts []*entity.Post
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *fakePostRepo) ListByAuthor(ctx context.Context, userID string) ([]*entity.Post, error) {
	var posts []*entity.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) HasLike(ctx context.Context, postID, userID string) (bool, error) {
	return r.likes[postID][userID], nil
}

func (r *fakePostRepo) SetLike(ctx context.Context, postID, userID string) error {
	if r.likes[postID] == nil {
		r.likes[postID] = make(map[string]bool)
	}
	r.likes[postID][userID] = true
	return nil
}

func (r *fakePostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	delete(r.likes[postID], userID)
	return nil
}

func (r *fakePostRepo) IncrementLikes(ctx context.Context, postID string, delta int) error {
	post, ok := r.posts[postID]
	if !ok {
		return errFakeNotFound
	}
	post.Likes += delta
	return nil
}

type fakeServiceRequestRepo struct {
	requests map[string]*entity.ServiceRequest
	nextID   int
}

func newFakeServiceRequestRepo() *fakeServiceRequestRepo {
	return &fakeServiceRequestRepo{requests: make(map[string]*entity.ServiceRequest)}
}

func (r *fakeServiceRequestRepo) Create(ctx context.Context, request *entity.ServiceRequest) error {
	r.nextID++
	request.ID = fmt.Sprintf("request-%d", r.nextID)
	r.requests[request.ID] = request
	return nil
}

func (r *fakeServiceRequestRepo) GetByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *request
	return &copied, nil
}

func (r *fakeServiceRequestRepo) Update(ctx context.Context, request *entity.ServiceRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return errFakeNotFound
	}
	r.requests[request.ID] = request
	return nil
}

func (r *fakeServiceRequestRepo) Delete(ctx context.Context, id string) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeServiceRequestRepo) List(ctx context.Context) ([]*entity.ServiceRequest, error) {
	var requests []*entity.ServiceRequest
	for _, request := range r.requests {
		requests = append(requests, request)
	}
	return requests, nil
}

func (r *fakeServiceRequestRepo) ListByRequester(ctx context.Context, userID string) ([]*entity.ServiceRequest, error) {
	var requests []*entity.ServiceRequest
	for _, request := range r.requests {
		if request.UserID == userID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (r *fakeServiceRequestRepo) countByReceiver(receiverID string) int {
	count := 0
	for _, request := range r.requests {
		if request.ReceiverID == receiverID {
			count++
		}
	}
	return count
}

type fakeProviderRequestRepo struct {
	requests map[string]*entity.ProviderRequest
	nextID   int
}

func newFakeProviderRequestRepo() *fakeProviderRequestRepo {
	return &fakeProviderRequestRepo{requests: make(map[string]*entity.ProviderRequest)}
}

func (r *fakeProviderRequestRepo) Create(ctx context.Context, request *entity.ProviderRequest) error {
	r.nextID++
	request.ID = fmt.Sprintf("provider-request-%d", r.nextID)
	r.requests[request.ID] = request
	return nil
}

func (r *fakeProviderRequestRepo) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.ProviderRequest, error) {
	var requests []*entity.ProviderRequest
	for _, request := range r.requests {
		if request.ReceiverID == receiverID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

// fakeAcceptanceRepo settles against the user and service-request fakes the
// same way the Firestore transaction touches the three collections.
type fakeAcceptanceRepo struct {
	acceptances map[string]*entity.Acceptance
	userRepo    *fakeUserRepo
	requestRepo *fakeServiceRequestRepo
	nextID      int
}

func newFakeAcceptanceRepo(userRepo *fakeUserRepo, requestRepo *fakeServiceRequestRepo) *fakeAcceptanceRepo {
	return &fakeAcceptanceRepo{
		acceptances: make(map[string]*entity.Acceptance),
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

func (r *fakeAcceptanceRepo) Create(ctx context.Context, acceptance *entity.Acceptance) error {
	r.nextID++
	acceptance.ID = fmt.Sprintf("acceptance-%d", r.nextID)
	r.acceptances[acceptance.ID] = acceptance
	return nil
}

func (r *fakeAcceptanceRepo) GetByID(ctx context.Context, id string) (*entity.Acceptance, error) {
	acceptance, ok := r.acceptances[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *acceptance
	return &copied, nil
}

func (r *fakeAcceptanceRepo) Delete(ctx context.Context, id string) error {
	delete(r.acceptances, id)
	return nil
}

func (r *fakeAcceptanceRepo) ListByReceiver(ctx context.Context, receiverID string) ([]*entity.Acceptance, error) {
	var acceptances []*entity.Acceptance
	for _, acceptance := range r.acceptances {
		if acceptance.ReceiverID == receiverID {
			acceptances = append(acceptances, acceptance)
		}
	}
	return acceptances, nil
}

func (r *fakeAcceptanceRepo) Settle(ctx context.Context, acceptance *entity.Acceptance) error {
	receiver, ok := r.userRepo.users[acceptance.ReceiverID]
	if !ok {
		return errFakeNotFound
	}
	receiver.CompletedJobs++
	for id, request := range r.requestRepo.requests {
		if request.ReceiverID == acceptance.SenderID {
			delete(r.requestRepo.requests, id)
		}
	}
	delete(r.acceptances, acceptance.ID)
	return nil
}

type fakeMessageRepo struct {
	messages map[string][]*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string][]*entity.Message)}
}

func (r *fakeMessageRepo) Append(ctx context.Context, userID string, message *entity.Message) error {
	r.messages[userID] = append(r.messages[userID], message)
	return nil
}

func (r *fakeMessageRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	return r.messages[userID], nil
}

type fakeNotifier struct {
	events map[string]int
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(map[string]int)}
}

func (n *fakeNotifier) NotifyUser(userID string, event interface{}) {
	n.events[userID]++
}
