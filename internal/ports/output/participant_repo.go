package output

import (
	"context"

	"presensicheck/internal/domain/entities"
)

type ParticipantRepository interface {
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	SampleByEventID(ctx context.Context, eventID uint, limit int) ([]entities.Participant, error)
	CountByEmailDomain(ctx context.Context, eventID uint) ([]entities.GroupCount, error)
	TopProvinces(ctx context.Context, eventID uint, limit int) ([]entities.GroupCount, error)
}
