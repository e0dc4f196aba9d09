package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username       string               `bson:"username" json:"username"`
	Name           string               `bson:"name" json:"name"`
	Email          string               `bson:"email" json:"email"`
	Age            int                  `bson:"age" json:"age"`
	PasswordHash   string               `bson:"password" json:"-"`
	ProfilePicture string               `bson:"profilePicture,omitempty" json:"profile_picture,omitempty"`
	Posts          []primitive.ObjectID `bson:"posts" json:"posts"`
	CreatedAt      time.Time            `bson:"createdAt" json:"created_at"`
}
