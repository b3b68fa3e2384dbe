package entity

// Message is a free-form notification line appended to a user's messages
// sub-collection as a side effect of the accept/decline workflow.
type Message struct {
	ID        string `json:"id" firestore:"-"`
	Text      string `json:"text" firestore:"text"`
	Timestamp int64  `json:"timestamp" firestore:"timestamp"`
}
