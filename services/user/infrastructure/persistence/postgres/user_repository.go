package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ku-alexej/shareit/pkg/database"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
	"github.com/ku-alexej/shareit/services/user/domain/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. The unique index on email makes the
// duplicate check race-free; 23505 maps to ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	err := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		user.Name, user.Email,
	).Scan(&user.ID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, userdomain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// Patch merges the patch onto the stored user inside one transaction.
// The row is locked so a concurrent patch cannot be lost, and email
// uniqueness is re-checked right before the write.
func (r *UserRepository) Patch(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	var updated models.User
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var current models.User
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, email FROM users WHERE id = $1 FOR UPDATE`, id,
		).Scan(&current.ID, &current.Name, &current.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return userdomain.ErrUserNotFound
			}
			return fmt.Errorf("select user: %w", err)
		}

		updated = current.Merge(patch)

		if updated.Email != current.Email {
			var taken bool
			err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
				updated.Email, id,
			).Scan(&taken)
			if err != nil {
				return fmt.Errorf("check email: %w", err)
			}
			if taken {
				return userdomain.ErrEmailTaken
			}
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET name = $1, email = $2 WHERE id = $3`,
			updated.Name, updated.Email, id,
		); err != nil {
			if isPgError(err, pgUniqueViolation) {
				return userdomain.ErrEmailTaken
			}
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetByID retrieves a user by id. Returns ErrUserNotFound if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, email FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// FindAll returns every registered user.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT id, name, email FROM users`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Delete removes a user by id. Foreign keys are RESTRICT, so a user that
// still owns items or participates in bookings maps to ErrUserInUse.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return userdomain.ErrUserInUse
		}
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

// Exists reports whether a user with the given id exists.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

// isPgError reports whether err is a PostgreSQL error with the given code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
