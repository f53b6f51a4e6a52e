package database

import (
	"context"
	"database/sql"
	"fmt"

	"presensicheck/internal/domain/entities"
	"presensicheck/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository with read-only
// queries over presensi.
type ParticipantRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(db *sql.DB, dialect Dialect) *ParticipantRepository {
	return &ParticipantRepository{db: db, dialect: dialect}
}

func (r *ParticipantRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(countParticipantsQuery), int64(eventID)).Scan(&total); err != nil {
		return 0, dbErr("count participants", err)
	}
	return total, nil
}

func (r *ParticipantRepository) SampleByEventID(ctx context.Context, eventID uint, limit int) ([]entities.Participant, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(sampleParticipantsQuery), int64(eventID), limit)
	if err != nil {
		return nil, dbErr("sample participants", err)
	}
	defer rows.Close()

	out := []entities.Participant{}
	for rows.Next() {
		var row participantRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, dbErr("scan participant", err)
		}
		out = append(out, participantToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("sample participants", err)
	}
	return out, nil
}

func (r *ParticipantRepository) CountByEmailDomain(ctx context.Context, eventID uint) ([]entities.GroupCount, error) {
	query := r.dialect.Rebind(fmt.Sprintf(emailDomainsQuery, r.dialect.emailDomain))
	rows, err := r.db.QueryContext(ctx, query, int64(eventID))
	if err != nil {
		return nil, dbErr("count email domains", err)
	}
	groups, err := scanGroups(rows)
	if err != nil {
		return nil, dbErr("count email domains", err)
	}
	return groups, nil
}

func (r *ParticipantRepository) TopProvinces(ctx context.Context, eventID uint, limit int) ([]entities.GroupCount, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(topProvincesQuery), int64(eventID), limit)
	if err != nil {
		return nil, dbErr("top provinces", err)
	}
	groups, err := scanGroups(rows)
	if err != nil {
		return nil, dbErr("top provinces", err)
	}
	return groups, nil
}
