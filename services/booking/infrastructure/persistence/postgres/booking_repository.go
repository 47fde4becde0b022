package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ku-alexej/shareit/pkg/database"
	"github.com/ku-alexej/shareit/pkg/httpx"
	bookingdomain "github.com/ku-alexej/shareit/services/booking/domain"
	"github.com/ku-alexej/shareit/services/booking/domain/models"
)

const bookingColumns = `b.id, b.start_at, b.end_at, b.item_id, i.name, b.booker_id, i.owner_id, b.status`

// BookingRepository implements repositories.BookingRepository against
// PostgreSQL.
type BookingRepository struct {
	db *database.Database
}

// NewBookingRepository returns a BookingRepository backed by the given
// connection pool.
func NewBookingRepository(db *database.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking and returns it with the item name and owner
// joined in.
func (r *BookingRepository) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	err := r.db.DB().QueryRowContext(ctx,
		`WITH inserted AS (
		     INSERT INTO bookings (start_at, end_at, item_id, booker_id, status)
		     VALUES ($1, $2, $3, $4, $5)
		     RETURNING id, start_at, end_at, item_id, booker_id, status
		 )
		 SELECT b.id, b.start_at, b.end_at, b.item_id, i.name, b.booker_id, i.owner_id, b.status
		 FROM inserted b
		 JOIN items i ON i.id = b.item_id`,
		booking.Start, booking.End, booking.ItemID, booking.BookerID, booking.Status,
	).Scan(&booking.ID, &booking.Start, &booking.End, &booking.ItemID,
		&booking.ItemName, &booking.BookerID, &booking.OwnerID, &booking.Status)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &booking, nil
}

// GetByID retrieves a booking by id. Returns ErrBookingNotFound if not
// found.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b
		 JOIN items i ON i.id = b.item_id
		 WHERE b.id = $1`, id,
	)
	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookingdomain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("query booking: %w", err)
	}
	return booking, nil
}

// SetStatus moves a booking to the given status. The current status is
// re-read under a row lock so two concurrent resolutions cannot both win.
func (r *BookingRepository) SetStatus(ctx context.Context, id int64, next models.Status) (*models.Booking, error) {
	var updated *models.Booking
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+bookingColumns+`
			 FROM bookings b
			 JOIN items i ON i.id = b.item_id
			 WHERE b.id = $1
			 FOR UPDATE OF b`, id,
		)
		current, err := scanBooking(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return bookingdomain.ErrBookingNotFound
			}
			return fmt.Errorf("select booking: %w", err)
		}

		if !models.CanTransition(current.Status, next) {
			return bookingdomain.ErrAlreadyResolved
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE bookings SET status = $1 WHERE id = $2`, next, id,
		); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		current.Status = next
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListByBooker returns the user's bookings matching state, newest start
// first.
func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error) {
	return r.list(ctx, "b.booker_id", bookerID, state, at, page)
}

// ListByOwner returns the bookings of the user's items matching state,
// newest start first.
func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error) {
	return r.list(ctx, "i.owner_id", ownerID, state, at, page)
}

func (r *BookingRepository) list(ctx context.Context, column string, userID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error) {
	cond, args := stateCondition(state, at)
	args = append([]any{userID}, args...)
	args = append(args, page.Limit(), page.Offset())

	query := fmt.Sprintf(
		`SELECT `+bookingColumns+`
		 FROM bookings b
		 JOIN items i ON i.id = b.item_id
		 WHERE %s = $1%s
		 ORDER BY b.start_at DESC, b.id DESC
		 LIMIT $%d OFFSET $%d`,
		column, cond, len(args)-1, len(args),
	)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	return scanBookings(rows)
}

// stateCondition renders the extra WHERE clause for a list filter. The
// condition's placeholders start at $2.
func stateCondition(state models.State, at time.Time) (string, []any) {
	switch state {
	case models.StateCurrent:
		return " AND b.start_at <= $2 AND b.end_at > $2", []any{at}
	case models.StatePast:
		return " AND b.end_at < $2", []any{at}
	case models.StateFuture:
		return " AND b.start_at > $2", []any{at}
	case models.StateWaiting:
		return " AND b.status = $2", []any{models.StatusWaiting}
	case models.StateRejected:
		return " AND b.status = $2", []any{models.StatusRejected}
	default:
		return "", nil
	}
}

// LastForItems returns, per item, the latest booking that started at or
// before the reference time and was not rejected or canceled.
func (r *BookingRepository) LastForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.Booking, error) {
	return r.projection(ctx,
		`SELECT DISTINCT ON (b.item_id) `+bookingColumns+`
		 FROM bookings b
		 JOIN items i ON i.id = b.item_id
		 WHERE b.item_id = ANY($1)
		   AND b.start_at <= $2
		   AND b.status NOT IN ('REJECTED', 'CANCELED')
		 ORDER BY b.item_id, b.end_at DESC`,
		itemIDs, at,
	)
}

// NextForItems returns, per item, the earliest booking starting strictly
// after the reference time, excluding rejected and canceled.
func (r *BookingRepository) NextForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.Booking, error) {
	return r.projection(ctx,
		`SELECT DISTINCT ON (b.item_id) `+bookingColumns+`
		 FROM bookings b
		 JOIN items i ON i.id = b.item_id
		 WHERE b.item_id = ANY($1)
		   AND b.start_at > $2
		   AND b.status NOT IN ('REJECTED', 'CANCELED')
		 ORDER BY b.item_id, b.start_at`,
		itemIDs, at,
	)
}

func (r *BookingRepository) projection(ctx context.Context, query string, itemIDs []int64, at time.Time) (map[int64]models.Booking, error) {
	if len(itemIDs) == 0 {
		return map[int64]models.Booking{}, nil
	}
	rows, err := r.db.DB().QueryContext(ctx, query, itemIDs, at)
	if err != nil {
		return nil, fmt.Errorf("query booking projection: %w", err)
	}
	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64]models.Booking, len(bookings))
	for _, b := range bookings {
		byItem[b.ItemID] = b
	}
	return byItem, nil
}

// HasFinishedBooking reports whether bookerID had a booking of the item
// that ended before the reference time.
func (r *BookingRepository) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, at time.Time) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM bookings
		     WHERE item_id = $1 AND booker_id = $2 AND end_at < $3
		 )`,
		itemID, bookerID, at,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check finished booking: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.Start, &b.End, &b.ItemID,
		&b.ItemName, &b.BookerID, &b.OwnerID, &b.Status)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	defer rows.Close() //nolint:errcheck

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}
