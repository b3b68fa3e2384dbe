package entity

// Post is a user-authored report about an electrical issue.
// Timestamp is unix milliseconds from the client clock; Likes is maintained
// with server-side increments paired to the like sub-collection.
type Post struct {
	ID          string `json:"id" firestore:"-"`
	UserID      string `json:"user_id" firestore:"userId"`
	Username    string `json:"username" firestore:"username"`
	Title       string `json:"title" firestore:"title"`
	Location    string `json:"location" firestore:"location"`
	Description string `json:"description" firestore:"description"`
	Timestamp   int64  `json:"timestamp" firestore:"timestamp"`
	Likes       int    `json:"likes" firestore:"likes"`
}
