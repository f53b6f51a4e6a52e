package database

import (
	"context"
	"database/sql"
	"errors"

	"presensicheck/internal/domain"
	"presensicheck/internal/domain/entities"
	"presensicheck/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewEventRepository(db *sql.DB, dialect Dialect) *EventRepository {
	return &EventRepository{db: db, dialect: dialect}
}

func (r *EventRepository) FindByReference(ctx context.Context, reference string) (*entities.Event, error) {
	var (
		id   int64
		name sql.NullString
		ref  string
	)
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(findEventByReferenceQuery), reference).Scan(&id, &name, &ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, dbErr("get event by reference", err)
	}
	return &entities.Event{ID: uint(id), Name: nullString(name), Reference: ref}, nil
}

// DeleteWithParticipants deletes the participant rows first, then the event,
// and commits both statements together. Any failure rolls the pair back.
func (r *EventRepository) DeleteWithParticipants(ctx context.Context, eventID uint) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dbErr("begin cleanup", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	res, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteParticipantsQuery), int64(eventID))
	if err != nil {
		return 0, dbErr("delete participants", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, dbErr("delete participants", err)
	}

	if _, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteEventQuery), int64(eventID)); err != nil {
		return 0, dbErr("delete event", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, dbErr("commit cleanup", err)
	}
	return deleted, nil
}
