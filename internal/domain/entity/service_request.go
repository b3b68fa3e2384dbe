package entity

// ServiceRequest is an open request for electrical work, posted to the shared
// feed and filterable by county tag. ReceiverID is set when the request is
// directed at a specific provider; the accept workflow deletes every request
// whose ReceiverID matches the accepted requester.
type ServiceRequest struct {
	ID          string `json:"id" firestore:"-"`
	UserID      string `json:"user_id" firestore:"userId"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	LocationTag string `json:"location_tag" firestore:"locationTag"`
	ReceiverID  string `json:"receiver_id,omitempty" firestore:"receiverId,omitempty"`
	Timestamp   int64  `json:"timestamp" firestore:"timestamp"`
}

// ProviderRequest is a direct "request for provider" submission, carrying the
// requester's contact details so the provider can reach back.
type ProviderRequest struct {
	ID          string `json:"id" firestore:"-"`
	Name        string `json:"name" firestore:"name"`
	Location    string `json:"location" firestore:"location"`
	Contact     string `json:"contact" firestore:"contact"`
	Description string `json:"description" firestore:"description"`
	SenderID    string `json:"sender_id" firestore:"senderId"`
	ReceiverID  string `json:"receiver_id" firestore:"receiverId"`
	Timestamp   int64  `json:"timestamp" firestore:"timestamp"`
}
