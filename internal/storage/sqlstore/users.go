package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/sheetledger/internal/models"
	"github.com/mmynk/sheetledger/internal/storage"
)

const userColumns = `id, email, name, picture, subject, created_at`

// CreateUser inserts a new user into the database.
func (q *queries) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := q.exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Picture,
		nullString(user.Subject),
		user.CreatedAt,
	)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Email, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by their ID.
func (q *queries) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return q.getUser(ctx, "id", id)
}

// GetUserBySubject retrieves a user by their identity provider subject.
func (q *queries) GetUserBySubject(ctx context.Context, subject string) (*models.User, error) {
	return q.getUser(ctx, "subject", subject)
}

// GetUserByEmail retrieves a user by their email address.
func (q *queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return q.getUser(ctx, "email", email)
}

// getUser looks a user up by one unique column. column is never user input.
func (q *queries) getUser(ctx context.Context, column string, value any) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = ?`

	user := &models.User{}
	var subject sql.NullString
	err := q.queryRow(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Picture,
		&subject,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	user.Subject = subject.String

	return user, nil
}

// UpdateUser overwrites the profile fields and subject link of a user.
func (q *queries) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = ?, name = ?, picture = ?, subject = ?
		WHERE id = ?
	`

	result, err := q.exec(ctx, query,
		user.Email,
		user.Name,
		user.Picture,
		nullString(user.Subject),
		user.ID,
	)
	if err != nil {
		if q.dialect.isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", user.Email, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return requireAffected(result, "user")
}

// CountUsers returns the number of registered users.
func (q *queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := q.queryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// requireAffected maps an update or delete that touched nothing to ErrNotFound.
func requireAffected(result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return nil
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
