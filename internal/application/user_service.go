package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ashisrivastavaa/Blog-App/internal/domain/entity"
	repo "github.com/ashisrivastavaa/Blog-App/internal/domain/repository"
	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
	"github.com/ashisrivastavaa/Blog-App/pkg/mailer"
)

var (
	ErrAlreadyRegistered = errors.New("user already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	Repo        repo.UserRepository
	Session     *helpers.SessionManager
	GCS         *storage.Client
	GCSBucket   string
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	AppName     string
	MailEnabled bool
}

func NewUserService(repo repo.UserRepository, session *helpers.SessionManager, gcs *storage.Client, gcsBucket string, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName string, mailEnabled bool) *UserService {
	return &UserService{
		Repo:        repo,
		Session:     session,
		GCS:         gcs,
		GCSBucket:   gcsBucket,
		Logger:      logger,
		Pub:         pub,
		AppName:     appName,
		MailEnabled: mailEnabled,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Name     string
	Age      int
}

// Register creates a new account and issues its first session token.
// The order is strict: hash the password, create the user, then sign the
// token for the id the store handed back.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	if existing, err := s.Repo.GetByEmail(in.Email); err == nil && existing != nil {
		return nil, "", ErrAlreadyRegistered
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &entity.User{
		Email:    in.Email,
		Username: in.Username,
		Name:     in.Name,
		Age:      in.Age,
		Password: hash,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", err
	}

	token, err := s.Session.Issue(u.Email, u.ID)
	if err != nil {
		return nil, "", err
	}

	s.enqueueWelcomeMail(ctx, u)

	return u, token, nil
}

// Login verifies credentials and issues a session token identical in shape
// to the one Register produces.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.Session.Issue(u.Email, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetProfile loads the user for the given email together with their posts.
func (s *UserService) GetProfile(email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmailWithPosts(email)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UploadProfilePicture stores the uploaded image and records its URL on the
// caller's user record.
func (s *UserService) UploadProfilePicture(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return "", ErrUserNotFound
	}
	url, err := s.uploadImage(ctx, userID, r, filename, contentType)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateProfilePic(u.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) uploadImage(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("profilepics", userID, id+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// enqueueWelcomeMail is fire-and-forget; registration never fails because
// of mail.
func (s *UserService) enqueueWelcomeMail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data: map[string]any{
			"Name":    u.Name,
			"Email":   u.Email,
			"AppName": s.AppName,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome mail enqueue failed")
	}
}
