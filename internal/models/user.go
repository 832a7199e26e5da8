package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a Freedom Wall account.
// The same struct is persisted by the GORM and Mongo repositories.
type User struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	FirstName    string `gorm:"not null" bson:"firstName" json:"firstName"`
	LastName     string `gorm:"not null" bson:"lastName" json:"lastName"`
	Username     string `gorm:"uniqueIndex;not null" bson:"username" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash string `gorm:"type:text" bson:"password" json:"-"`

	// Avatar and CoverPhoto hold a data URI or a URL
	Avatar     string `gorm:"type:text" bson:"avatar" json:"avatar"`
	CoverPhoto string `gorm:"type:text" bson:"coverPhoto" json:"coverPhoto"`

	Bio          string `gorm:"type:text" bson:"bio" json:"bio"`
	Education    string `gorm:"type:text" bson:"education" json:"education"`
	Location     string `gorm:"type:text" bson:"location" json:"location"`
	Relationship string `gorm:"type:text" bson:"relationship" json:"relationship"`

	JoinDate  time.Time `bson:"joinDate" json:"joinDate"`
	Followers int       `gorm:"default:0" bson:"followers" json:"followers"`
	Following int       `gorm:"default:0" bson:"following" json:"following"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the display subset attached to posts and comments as "author"
type UserSummary struct {
	ID        string `bson:"_id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Username  string `bson:"username" json:"username"`
	Avatar    string `bson:"avatar" json:"avatar"`
}

// PublicUser is the projection served by GET /users/:id (no email, no password)
type PublicUser struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar"`
	CoverPhoto   string    `json:"coverPhoto"`
	Bio          string    `json:"bio"`
	Education    string    `json:"education"`
	Location     string    `json:"location"`
	Relationship string    `json:"relationship"`
	JoinDate     time.Time `json:"joinDate"`
	Followers    int       `json:"followers"`
	Following    int       `json:"following"`
}

// UserUpdate is a partial update; nil fields are left untouched
type UserUpdate struct {
	Avatar       *string
	CoverPhoto   *string
	Bio          *string
	Education    *string
	Location     *string
	Relationship *string
}

// IsEmpty reports whether the update would write nothing
func (u UserUpdate) IsEmpty() bool {
	return u.Avatar == nil && u.CoverPhoto == nil && u.Bio == nil &&
		u.Education == nil && u.Location == nil && u.Relationship == nil
}

// Fields returns the column/document keys to set, keyed by the camelCase document field
func (u UserUpdate) Fields() map[string]string {
	fields := make(map[string]string)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("avatar", u.Avatar)
	set("coverPhoto", u.CoverPhoto)
	set("bio", u.Bio)
	set("education", u.Education)
	set("location", u.Location)
	set("relationship", u.Relationship)
	return fields
}

// Apply writes the non-nil fields onto user
func (u UserUpdate) Apply(user *User) {
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
	if u.CoverPhoto != nil {
		user.CoverPhoto = *u.CoverPhoto
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	if u.Education != nil {
		user.Education = *u.Education
	}
	if u.Location != nil {
		user.Location = *u.Location
	}
	if u.Relationship != nil {
		user.Relationship = *u.Relationship
	}
}

// Summary returns the author display fields
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Avatar:    u.Avatar,
	}
}

// Public returns the publicly visible profile
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		Avatar:       u.Avatar,
		CoverPhoto:   u.CoverPhoto,
		Bio:          u.Bio,
		Education:    u.Education,
		Location:     u.Location,
		Relationship: u.Relationship,
		JoinDate:     u.JoinDate,
		Followers:    u.Followers,
		Following:    u.Following,
	}
}

// PrepareForCreate fills the id and timestamps of a new user
func (u *User) PrepareForCreate(now time.Time) {
	if u.ID == "" {
		u.ID = generateUUID()
	}
	if u.JoinDate.IsZero() {
		u.JoinDate = now
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// BeforeCreate hooks for GORM
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.PrepareForCreate(time.Now().UTC())
	return nil
}

func generateUUID() string {
	return uuid.New().String()
}
