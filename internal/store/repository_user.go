// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the generated id.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building sql query")
		return models.User{}, buildError(err)
	}

	id, err := r.db.insertRow(ctx, user.TableName(), query, args, "*userRepository.CreateUser", func(class ErrorClass) error {
		if class == ClassUniqueViolation {
			return ErrEmailAlreadyExists
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	user.ID = id
	return user, nil
}

// GetUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectByID(models.User{}.TableName(), userColumns, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error building sql query")
		return models.User{}, buildError(err)
	}

	var user models.User
	err = r.db.queryRow(ctx, user.TableName(), query, args, ErrUserNotFound, "*userRepository.GetUserByID", func(row rowScanner) error {
		return scanUser(row, &user)
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail returns the user with the given email or [ErrUserNotFound].
// The comparison is exact.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectUserByEmail(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building sql query")
		return models.User{}, buildError(err)
	}

	var user models.User
	err = r.db.queryRow(ctx, user.TableName(), query, args, ErrUserNotFound, "*userRepository.FindUserByEmail", func(row rowScanner) error {
		return scanUser(row, &user)
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// GetAllUsers returns every user ordered by id. The slice is never nil.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectAll(models.User{}.TableName(), userColumns)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error building sql query")
		return nil, buildError(err)
	}

	users := make([]models.User, 0)
	err = r.db.queryRows(ctx, models.User{}.TableName(), query, args, "*userRepository.GetAllUsers", func(row rowScanner) error {
		var user models.User
		if scanErr := scanUser(row, &user); scanErr != nil {
			return scanErr
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// DeleteUser removes the user with the given id. Favorites of the user are
// removed by the ON DELETE CASCADE of the favorites table.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.db.deleteRow(ctx, models.User{}.TableName(), id, ErrUserNotFound, "*userRepository.DeleteUser")
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsActive)
}
