package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ku-alexej/shareit/pkg/database"
	"github.com/ku-alexej/shareit/pkg/httpx"
	requestdomain "github.com/ku-alexej/shareit/services/request/domain"
	"github.com/ku-alexej/shareit/services/request/domain/models"
)

// RequestRepository implements repositories.RequestRepository against
// PostgreSQL.
type RequestRepository struct {
	db *database.Database
}

// NewRequestRepository returns a RequestRepository backed by the given
// connection pool.
func NewRequestRepository(db *database.Database) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts the request with the database clock as creation time.
func (r *RequestRepository) Create(ctx context.Context, request models.ItemRequest) (*models.ItemRequest, error) {
	err := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO requests (description, requester_id, created)
		 VALUES ($1, $2, now())
		 RETURNING id, created`,
		request.Description, request.RequesterID,
	).Scan(&request.ID, &request.Created)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}
	return &request, nil
}

// GetByID retrieves a request by id. Returns ErrRequestNotFound if not
// found.
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var req models.ItemRequest
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, description, requester_id, created FROM requests WHERE id = $1`, id,
	).Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, requestdomain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("query request: %w", err)
	}
	return &req, nil
}

// FindByRequester returns the user's own requests, newest first.
func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, description, requester_id, created
		 FROM requests WHERE requester_id = $1
		 ORDER BY created DESC`,
		requesterID,
	)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	return scanRequests(rows)
}

// FindOthers returns other users' requests, newest first.
func (r *RequestRepository) FindOthers(ctx context.Context, requesterID int64, page httpx.Page) ([]models.ItemRequest, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, description, requester_id, created
		 FROM requests WHERE requester_id <> $1
		 ORDER BY created DESC
		 LIMIT $2 OFFSET $3`,
		requesterID, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	return scanRequests(rows)
}

// Exists reports whether a request with the given id exists.
func (r *RequestRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check request exists: %w", err)
	}
	return exists, nil
}

func scanRequests(rows *sql.Rows) ([]models.ItemRequest, error) {
	defer rows.Close() //nolint:errcheck

	var requests []models.ItemRequest
	for rows.Next() {
		var req models.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return requests, nil
}
