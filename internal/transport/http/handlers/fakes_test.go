package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/socialsphere/app/internal/domain"
)

// In-memory repositories so handler tests run the real services without a
// database.

type memUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	cp := *user
	r.users[id] = &cp
	return id, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) AddPost(_ context.Context, userID, postID primitive.ObjectID) error {
	if u, ok := r.users[userID]; ok {
		u.Posts = append(u.Posts, postID)
	}
	return nil
}

func (r *memUserRepo) SetProfilePicture(_ context.Context, userID primitive.ObjectID, filename string) error {
	if u, ok := r.users[userID]; ok {
		u.ProfilePicture = filename
	}
	return nil
}

type memPostRepo struct {
	posts map[primitive.ObjectID]*domain.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[primitive.ObjectID]*domain.Post)}
}

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	post.ID = id
	cp := *post
	r.posts[id] = &cp
	return id, nil
}

func (r *memPostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPostRepo) AddLike(_ context.Context, postID, userID primitive.ObjectID) error {
	p, ok := r.posts[postID]
	if !ok {
		return nil
	}
	if !p.LikedBy(userID) {
		p.Likes = append(p.Likes, userID)
	}
	return nil
}

func (r *memPostRepo) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	p, ok := r.posts[postID]
	if !ok {
		return nil
	}
	kept := p.Likes[:0]
	for _, id := range p.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	p.Likes = kept
	return nil
}

func (r *memPostRepo) UpdateContent(_ context.Context, postID primitive.ObjectID, content string) error {
	if p, ok := r.posts[postID]; ok {
		p.Content = content
	}
	return nil
}
