package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepository(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	reference := input.ReferenceNumber
	if reference == "" {
		var eventName string
		nameQuery := `SELECT name FROM events WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, nameQuery, input.EventID)
		if err != nil {
			return nil, fmt.Errorf("resolve event name: %w", err)
		}
		if err = row.Scan(&eventName); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("resolve event name: %w", err)
		}
		reference = domain.NewReferenceNumber(eventName)
	}

	query := `INSERT INTO bookings (user_id, event_id, reference_number, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`

	booking := domain.Booking{
		UserID:          input.UserID,
		EventID:         input.EventID,
		ReferenceNumber: reference,
		CreatedAt:       time.Now().UTC(),
	}

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		booking.UserID, booking.EventID, booking.ReferenceNumber, booking.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&booking.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// the (user_id, event_id) index closes the
			// check-then-create race window
			if pgErr.Constraint == "bookings_user_event_idx" {
				return nil, domain.ErrAlreadyBooked
			}
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return &booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, reference_number, created_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBookingRow(row)
}

func (r *BookingRepository) GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, reference_number, created_at
			  FROM bookings
			  WHERE user_id = $1 AND event_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBookingRow(row)
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, reference_number, created_at
			  FROM bookings
			  ORDER BY id`

	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, event_id, reference_number, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY id`

	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM bookings WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete booking rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.UserID, &b.EventID, &b.ReferenceNumber, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func scanBookingRow(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.EventID, &b.ReferenceNumber, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}
