// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

const testSignKey = "test-sign-key"

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   testSignKey,
		tokenIssuer:    "go-task-keeper",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

var errRepository = errors.New("repository error")

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice_01", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.NotEmpty(t, user.PasswordHash)
			assert.NotEqual(t, "pass1word", user.PasswordHash, "plaintext password must never reach the store")

			user.UserID = 42
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "alice_01",
		Email:    "Alice@Example.COM",
		Password: "pass1word",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Equal(t, "alice@example.com", registered.Email, "email must be stored lowercased")

	matches, err := utils.VerifyPassword(registered.PasswordHash, "pass1word")
	require.NoError(t, err)
	assert.True(t, matches, "stored digest must verify against the original password")
}

func TestAuthService_RegisterUser_InvalidUsername(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("CreateUser must not be called for invalid input")
			return models.User{}, nil
		},
	})

	for _, username := range []string{"", "ab", "has space", "way_too_long_username_over_thirty_chars", "bad!chars"} {
		_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
			Username: username,
			Email:    "a@b.com",
			Password: "pass1word",
		})

		require.ErrorIs(t, err, ErrValidationInvalidUsername, "username %q", username)
	}
}

func TestAuthService_RegisterUser_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, email := range []string{"", "not-an-email", "missing@domain@twice"} {
		_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
			Username: "alice",
			Email:    email,
			Password: "pass1word",
		})

		require.ErrorIs(t, err, ErrValidationInvalidEmail, "email %q", email)
	}
}

func TestAuthService_RegisterUser_WeakPassword(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	for _, password := range []string{"", "a1", "letters", "12345", "1234567"} {
		_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
			Username: "alice",
			Email:    "a@b.com",
			Password: password,
		})

		require.ErrorIs(t, err, ErrValidationWeakPassword, "password %q", password)
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "alice",
		Email:    "a@b.com",
		Password: "pass1word",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("pass1word")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email, "lookup must use the lowercased email")
			return models.User{UserID: 42, Username: "alice", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "Alice@Example.com",
		Password: "pass1word",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "pass1word",
	})

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct1pass")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 42, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong1pass",
	})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("FindUserByEmail must not be called for empty credentials")
			return models.User{}, nil
		},
	})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "", Password: ""})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errRepository
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "pass1word",
	})

	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ParseToken_AllFailuresLookAlike(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	expired, err := utils.GenerateJWTToken("go-task-keeper", 42, -time.Hour, testSignKey)
	require.NoError(t, err)

	foreignKey, err := utils.GenerateJWTToken("go-task-keeper", 42, time.Hour, "some-other-key")
	require.NoError(t, err)

	wrongIssuer, err := utils.GenerateJWTToken("someone-else", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	cases := map[string]string{
		"expired":        expired.SignedString,
		"wrong sign key": foreignKey.SignedString,
		"wrong issuer":   wrongIssuer.SignedString,
		"garbage":        "not.a.token",
		"empty":          "",
	}

	for name, tokenString := range cases {
		_, parseErr := svc.ParseToken(context.Background(), tokenString)

		// Every failure mode must collapse to the same error: the response
		// must not reveal whether a token is expired, forged, or malformed.
		require.ErrorIs(t, parseErr, ErrTokenIsExpiredOrInvalid, "case %q", name)
	}
}

func TestAuthService_ParseToken_UnknownSubjectLooksLikeBadToken(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	// A valid token whose user has since been deleted must fail exactly like
	// an invalid token.
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
