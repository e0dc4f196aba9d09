package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialsphere/app/internal/domain"
	"github.com/socialsphere/app/internal/repository"
	"github.com/socialsphere/app/internal/token"
)

var (
	ErrEmailTaken   = errors.New("user already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidCreds = errors.New("invalid email or password")
)

const bcryptCost = 10

type AuthService struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Age      int
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Register creates a user and returns it with a freshly issued session
// token. The duplicate-email check runs before the password is hashed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: hash,
		Posts:        []primitive.ObjectID{},
		CreatedAt:    time.Now(),
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	tok, err := s.tokens.Issue(user.Email, id.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, tok, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password are distinct failures: the handlers surface the
// former but deliberately give nothing away for the latter.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !verifyPassword(input.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCreds
	}

	tok, err := s.tokens.Issue(user.Email, user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, tok, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
