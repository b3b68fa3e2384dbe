package entity

import (
	"time"
)

const (
	RoleUser            = "user"
	RoleServiceProvider = "serviceProvider"
)

// User is a TaaCheck profile document. Normal users and service providers
// share the collection; the provider-only fields stay zero for normal users.
type User struct {
	ID          string `json:"id" firestore:"uid"`
	FullName    string `json:"full_name" firestore:"fullName"`
	PhoneNumber string `json:"phone_number" firestore:"phoneNumber"`
	Email       string `json:"email" firestore:"email"`
	County      string `json:"county" firestore:"county"`
	Gender      string `json:"gender" firestore:"gender"`
	Role        string `json:"role" firestore:"role"`

	HasNewNotification bool   `json:"has_new_notification" firestore:"hasNewNotification"`
	ProfileImageUrl    string `json:"profile_image_url,omitempty" firestore:"profileImageUrl"`

	Profession    string  `json:"profession,omitempty" firestore:"profession,omitempty"`
	Experience    string  `json:"experience,omitempty" firestore:"experience,omitempty"`
	IdNumber      string  `json:"id_number,omitempty" firestore:"idNumber,omitempty"`
	Bio           string  `json:"bio,omitempty" firestore:"bio,omitempty"`
	Rating        float64 `json:"rating,omitempty" firestore:"rating,omitempty"`
	CompletedJobs int     `json:"completed_jobs,omitempty" firestore:"completedJobs,omitempty"`
	IsFeatured    bool    `json:"is_featured,omitempty" firestore:"isFeatured,omitempty"`
	ServiceCode   string  `json:"service_code,omitempty" firestore:"serviceCode,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsProvider() bool {
	return u.Role == RoleServiceProvider
}
