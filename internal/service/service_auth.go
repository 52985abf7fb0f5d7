package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// usernamePattern restricts usernames to 3-30 characters of letters, digits,
// and underscores. Matching is case-sensitive; "Alice" and "alice" are two
// different usernames.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the username, email, and password, hashes the password with
// bcrypt (per-record salt, adaptive cost), and delegates persistence to the
// UserRepository. The plaintext password is dropped as soon as the digest is
// computed; it is never persisted or logged.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A validation sentinel (ErrValidationInvalidUsername,
//     ErrValidationInvalidEmail, ErrValidationWeakPassword) for bad input.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists (wrapped)
//     when the account collides with an existing one.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	email, emailErr := normalizeEmail(req.Email)

	if !usernamePattern.MatchString(username) {
		log.Warn().Str("username", username).Msg("invalid username provided")
		return models.User{}, ErrValidationInvalidUsername
	}
	if emailErr != nil {
		log.Warn().Msg("invalid email provided")
		return models.User{}, ErrValidationInvalidEmail
	}
	if !isAcceptablePassword(req.Password) {
		log.Warn().Str("username", username).Msg("weak password provided")
		return models.User{}, ErrValidationWeakPassword
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It normalizes the email, looks up the account, and verifies the candidate
// password against the stored bcrypt digest. An unknown email and a wrong
// password both end in an error the handler maps to the same generic
// invalid-credentials response.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped store.ErrNoUserWasFound if the email is unknown.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email, emailErr := normalizeEmail(req.Email)
	if emailErr != nil || req.Password == "" {
		log.Warn().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	matches, err := utils.VerifyPassword(foundUser.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !matches {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim, and then checks that the subject still refers to an
// existing user. Any validation failure (expired, wrong issuer, malformed,
// tampered, deleted account) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers cannot tell the failure modes apart.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if _, err = a.userRepository.FindUserByID(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Token{}, fmt.Errorf("user lookup for token subject failed: %w", err)
	}

	return token, nil
}

// normalizeEmail trims, lowercases, and syntax-checks an email address.
// Lowercasing makes the uniqueness check case-insensitive: the store only
// ever sees the canonical form.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", err
	}

	return email, nil
}

// isAcceptablePassword enforces the registration password policy: at least
// five characters with at least one letter and one digit.
func isAcceptablePassword(password string) bool {
	if len(password) < 5 {
		return false
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
