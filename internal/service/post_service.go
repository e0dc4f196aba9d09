package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/socialsphere/app/internal/domain"
	"github.com/socialsphere/app/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{
		posts: posts,
		users: users,
	}
}

// Create inserts the post and then appends its id to the author's post
// list. The two writes are not transactional; the post carries its owner
// reference, so a crash between them leaves nothing the profile page cannot
// render (posts are read back by owner, not through the user's list).
func (s *PostService) Create(ctx context.Context, userID primitive.ObjectID, content string) (*domain.Post, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &domain.Post{
		UserID:    user.ID,
		Username:  user.Username,
		Content:   content,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now(),
	}

	id, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	if err := s.users.AddPost(ctx, user.ID, id); err != nil {
		return nil, fmt.Errorf("linking post to user: %w", err)
	}

	return post, nil
}

func (s *PostService) Get(ctx context.Context, postID primitive.ObjectID) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// ToggleLike adds the user to the post's like set, or removes them if
// already present. The store keeps the set free of duplicates.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if post.LikedBy(userID) {
		return s.posts.RemoveLike(ctx, postID, userID)
	}
	return s.posts.AddLike(ctx, postID, userID)
}

// UpdateContent replaces the post's content wholesale.
func (s *PostService) UpdateContent(ctx context.Context, postID primitive.ObjectID, content string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	return s.posts.UpdateContent(ctx, postID, content)
}
