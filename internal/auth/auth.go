// Package auth is the pluggable authentication collaborator. The storefront
// only depends on the Authenticator capability; the shipped implementation
// is a mock credential check standing in for a real identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopease/shopease/internal/hash"
	"github.com/shopease/shopease/internal/localstore"
	"github.com/shopease/shopease/internal/logging"
	"github.com/shopease/shopease/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrValidation         = errors.New("validation")
)

// SessionKey is the local-storage record the active session is mirrored
// under, matching the original client's "user" entry.
const SessionKey = "user"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Authenticator is the capability the rest of the system holds. Swapping in
// a real identity provider means implementing this and nothing else.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Session, error)
}

// The built-in demo account. Signing in with it always works, regardless
// of what is in the users table.
var (
	mockUserID = uuid.MustParse("a1f7b0de-0000-4000-8000-000000000001")

	mockEmail    = "user@example.com"
	mockPassword = "password"
)

// Mock authenticates against the hard-coded demo account plus any users
// registered locally. Sessions are signed HS256 tokens mirrored to local
// storage, best effort.
type Mock struct {
	DB     *gorm.DB
	Secret []byte
	Disk   *localstore.Store
	TTL    time.Duration
}

func NewMock(db *gorm.DB, secret []byte, disk *localstore.Store, ttl time.Duration) *Mock {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Mock{DB: db, Secret: secret, Disk: disk, TTL: ttl}
}

func (m *Mock) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "email", creds.Email)

	user, err := m.lookup(ctx, creds)
	if err != nil {
		l.Warn("login failed", "error", err)
		return nil, err
	}

	sess, err := m.newSession(*user)
	if err != nil {
		l.Error("cannot sign session token", "error", err)
		return nil, err
	}

	if err := m.Disk.Save(SessionKey, sess); err != nil {
		l.Warn("session not persisted, continuing in memory", "error", err)
	}
	l.Info("login ok", "user_id", user.ID)
	return sess, nil
}

func (m *Mock) lookup(ctx context.Context, creds Credentials) (*models.User, error) {
	if creds.Email == mockEmail && creds.Password == mockPassword {
		return &models.User{
			ID:        mockUserID,
			Email:     mockEmail,
			FirstName: "John",
			LastName:  "Doe",
			Role:      "admin",
		}, nil
	}

	var user models.User
	if err := m.DB.WithContext(ctx).Where("email = ?", creds.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, creds.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register stores a new local account and signs it straight in, like the
// original register flow did.
func (m *Mock) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "email", req.Email)

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if req.Email == mockEmail {
		return nil, ErrEmailTaken
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: pwHash,
		Role:         "user",
	}

	var existing models.User
	err = m.DB.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := m.DB.WithContext(ctx).Create(&user).Error; err != nil {
		l.Error("cannot create user", "error", err)
		return nil, err
	}

	sess, err := m.newSession(user)
	if err != nil {
		return nil, err
	}
	if err := m.Disk.Save(SessionKey, sess); err != nil {
		l.Warn("session not persisted, continuing in memory", "error", err)
	}
	l.Info("registered", "user_id", user.ID)
	return sess, nil
}

// Logout drops the mirrored session record.
func (m *Mock) Logout(ctx context.Context) error {
	return m.Disk.Delete(SessionKey)
}

func (m *Mock) newSession(user models.User) (*Session, error) {
	exp := time.Now().Add(m.TTL)
	token, err := SignSessionToken(user, m.Secret, exp)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user, ExpiresAt: exp}, nil
}
