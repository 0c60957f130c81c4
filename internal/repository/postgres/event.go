package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

const eventColumns = `id, name, description, category_id, event_date,
					  venue, address, price, capacity, image, created_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepository(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	query := `INSERT INTO events (name, description, category_id, event_date, venue, address, price, capacity, image, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`

	event := domain.Event{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Venue:       input.Venue,
		Address:     input.Address,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		event.Name, event.Description, event.CategoryID, event.Date,
		event.Venue, event.Address, event.Price, event.Capacity,
		event.Image, event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	if err = row.Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return &event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return scanEventRow(row)
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY id`

	return r.queryEvents(ctx, query)
}

func (r *EventRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE category_id = $1
			  ORDER BY id`

	return r.queryEvents(ctx, query, categoryID)
}

// Update merges the provided fields onto the stored record; NULL
// arguments keep the existing column value.
func (r *EventRepository) Update(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	query := `UPDATE events SET
				name        = COALESCE($2, name),
				description = COALESCE($3, description),
				category_id = COALESCE($4, category_id),
				event_date  = COALESCE($5, event_date),
				venue       = COALESCE($6, venue),
				address     = COALESCE($7, address),
				price       = COALESCE($8, price),
				capacity    = COALESCE($9, capacity),
				image       = COALESCE($10, image)
			  WHERE id = $1
			  RETURNING ` + eventColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, input.Name, input.Description, input.CategoryID, input.Date,
		input.Venue, input.Address, input.Price, input.Capacity, input.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return scanEventRow(row)
}

func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM events WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete event rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.CategoryID, &e.Date,
			&e.Venue, &e.Address, &e.Price, &e.Capacity, &e.Image, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func scanEventRow(row *sql.Row) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.CategoryID, &e.Date,
		&e.Venue, &e.Address, &e.Price, &e.Capacity, &e.Image, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}
