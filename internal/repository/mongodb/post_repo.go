package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/socialsphere/app/internal/domain"
)

type PostRepo struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) *PostRepo {
	return &PostRepo{col: db.Collection("posts")}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := res.InsertedID.(primitive.ObjectID)
	post.ID = id
	return id, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var p domain.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []domain.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// AddLike uses $addToSet so a user id is never duplicated in the like set.
func (r *PostRepo) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
	return err
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
	return err
}

func (r *PostRepo) UpdateContent(ctx context.Context, postID primitive.ObjectID, content string) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{"$set": bson.M{"content": content}})
	return err
}
