package entity

// Acceptance records that a requester confirmed a provider's offered service.
// TaaCheckID is the code the requester entered; it must match the provider's
// issued serviceCode before the document is ever created. The document lives
// until the receiver accepts or declines.
type Acceptance struct {
	ID            string `json:"id" firestore:"-"`
	Name          string `json:"name" firestore:"name"`
	TaaCheckID    string `json:"taacheck_id" firestore:"taaCheckId"`
	Role          string `json:"role" firestore:"role"`
	BusinessPhone string `json:"business_phone" firestore:"businessPhone"`
	Email         string `json:"email" firestore:"email"`
	Description   string `json:"description" firestore:"description"`
	SenderID      string `json:"sender_id" firestore:"senderId"`
	ReceiverID    string `json:"receiver_id" firestore:"receiverId"`
	Timestamp     int64  `json:"timestamp" firestore:"timestamp"`
}
