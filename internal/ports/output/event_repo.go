package output

import (
	"context"

	"presensicheck/internal/domain/entities"
)

type EventRepository interface {
	// FindByReference returns domain.ErrEventNotFound when no row matches.
	FindByReference(ctx context.Context, reference string) (*entities.Event, error)
	// DeleteWithParticipants removes the event and all of its participant
	// rows in a single transaction and returns the participant rows deleted.
	DeleteWithParticipants(ctx context.Context, eventID uint) (int64, error)
}
