package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	repo "github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
	"github.com/Aaronzito/api-web-encontrarte/pkg/helpers"
	"github.com/Aaronzito/api-web-encontrarte/pkg/mailer"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// RoleCreator is assigned to every registered account. Registration never
// accepts a caller-supplied role.
const RoleCreator = "Creator"

// AuthService orchestrates registration (hash + persist) and login
// (fetch + verify + issue token), plus the credential-store reads and the
// profile-image update that operate on the same table.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Pub: pub, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
	Address  string
	City     string
	Phone    string
}

// Register hashes the password and persists a new creator account.
// No token is issued here; login is a separate step.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	u := &entity.User{
		Role:     RoleCreator,
		Name:     in.Name,
		Lastname: in.Lastname,
		Email:    in.Email,
		Password: hash,
		Address:  in.Address,
		City:     in.City,
		Phone:    in.Phone,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return err
	}
	s.sendWelcome(ctx, u)
	return nil
}

// sendWelcome enqueues a welcome email when the queue is configured.
// Failures are logged and never affect the registration result.
func (s *AuthService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Welcome to Encontrarte",
		Text:    "Hola " + u.Name + ", your creator account is ready. Log in to start listing your artworks.",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}

// Login verifies the credentials against the stored hash and issues a
// session token embedding the user's id and email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if err := helpers.VerifyPassword(u.Password, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, "", ErrWrongPassword
		}
		return nil, "", err
	}
	token, _, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateImage stores a new profile image. An unknown id is a no-op, not an
// error; the affected-row count reports it.
func (s *AuthService) UpdateImage(ctx context.Context, id int64, image []byte) (int64, error) {
	return s.Repo.UpdateImage(ctx, id, image)
}
