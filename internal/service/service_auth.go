package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HMAC-SHA256 JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost of new password hashes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the App settings.
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser hashes the password and persists the user.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the input cannot be converted to a user.
//   - store.ErrUserAlreadyExists (wrapped) if username or e-mail is taken.
func (a *authService) RegisterUser(ctx context.Context, input validators.Input) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := userFromInput(input)
	if err != nil {
		log.Err(err).Msg("invalid user data provided")
		return models.User{}, err
	}
	if user.Username == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user.Password, err = utils.HashPassword(user.Password, a.hashCost)
	if err != nil {
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates a user by username and password.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, input validators.Input) (models.User, error) {
	log := logger.FromContext(ctx)

	username := stringValue(input, validators.FieldUsername)
	password := stringValue(input, validators.FieldPassword)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.Password, password); err != nil {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the user's ID and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.RoleID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
