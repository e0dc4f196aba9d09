package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/socialsphere/app/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	SetProfilePicture(ctx context.Context, userID primitive.ObjectID, filename string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error)
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error
	UpdateContent(ctx context.Context, postID primitive.ObjectID, content string) error
}
