package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminAccount is the single store administrator record. The email is
// fixed by configuration; only the password is exchanged at login.
type AdminAccount struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Role     string             `json:"role" bson:"role"`
}

// LoginRequest is used for admin login requests
type LoginRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is used for admin login responses
type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
