package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/socialsphere/app/internal/domain"
	"github.com/socialsphere/app/internal/repository"
)

type ProfileService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func NewProfileService(users repository.UserRepository, posts repository.PostRepository) *ProfileService {
	return &ProfileService{
		users: users,
		posts: posts,
	}
}

// Profile returns the user and their posts, newest first. Posts are queried
// by owner rather than through the user's post list, so an id left dangling
// by a partial write never surfaces here.
func (s *ProfileService) Profile(ctx context.Context, userID primitive.ObjectID) (*domain.User, []domain.Post, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, posts, nil
}

// SetPicture records the stored upload filename on the user.
func (s *ProfileService) SetPicture(ctx context.Context, userID primitive.ObjectID, filename string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.users.SetProfilePicture(ctx, userID, filename)
}
