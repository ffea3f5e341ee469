package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user document in MongoDB
type User struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	IsStudent bool               `json:"isStudent" bson:"isStudent"`
	Email     string             `json:"email" bson:"email"`
	Username  string             `json:"username" bson:"username"`
	Password  string             `json:"-" bson:"password"`
}

// PublicUser is the client-facing projection of a user document.
// The password hash never appears in it.
type PublicUser struct {
	UserID    string `json:"user_id"`
	IsStudent bool   `json:"isStudent"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		IsStudent: u.IsStudent,
		Email:     u.Email,
		Username:  u.Username,
	}
}

// CreateUserRequest is the payload for /signup and /createUser.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries a partial update. Nil fields were not present in
// the request body and must be left untouched in storage.
type UpdateUserRequest struct {
	IsStudent *bool   `json:"isStudent"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Username  *string `json:"username"`
}
