package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

// userRepository handles user account creation and lookup against the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: log,
	}
}

// CreateUser persists a new user and returns it with the server-assigned
// UserID and CreatedAt. user.Password must already be hashed.
//
// A unique violation on username or e-mail maps to [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByUsername returns the user with the given username, password
// hash included. [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.RoleID,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
