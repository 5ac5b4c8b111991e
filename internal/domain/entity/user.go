package entity

// UserCollection is the collection name for users.
const UserCollection = "users"

// User is an account able to authenticate against the API.
type User struct {
	Base `bson:",inline"`

	FirstName       string          `bson:"firstName" json:"firstName"`
	LastName        string          `bson:"lastName" json:"lastName"`
	Email           string          `bson:"email" json:"email"`
	Password        string          `bson:"password" json:"-" shape:"private"`
	Role            Role            `bson:"role" json:"role"`
	IsEmailVerified bool            `bson:"isEmailVerified" json:"isEmailVerified"`
	Avatar          string          `bson:"avatar,omitempty" json:"avatar,omitempty"`
	AvatarMetadata  *UploadMetadata `bson:"avatar_metadata,omitempty" json:"avatar_metadata,omitempty"`
}

// HasPermission reports whether the user's role grants every permission in required.
func (u *User) HasPermission(required ...Permission) bool {
	return u.Role.Grants(required...)
}
