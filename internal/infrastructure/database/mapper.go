package database

import (
	"database/sql"

	"presensicheck/internal/domain/entities"
)

// nullString returns s.String when Valid, else "".
func nullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

type participantRow struct {
	ID                int64
	EventID           int64
	FullName          sql.NullString
	Email             sql.NullString
	Unit              sql.NullString
	Province          sql.NullString
	CertificateNumber sql.NullString
}

func (p *participantRow) dest() []any {
	return []any{&p.ID, &p.EventID, &p.FullName, &p.Email, &p.Unit, &p.Province, &p.CertificateNumber}
}

func participantToDomain(p participantRow) entities.Participant {
	return entities.Participant{
		ID:                uint(p.ID),
		EventID:           uint(p.EventID),
		FullName:          nullString(p.FullName),
		Email:             nullString(p.Email),
		Unit:              nullString(p.Unit),
		Province:          nullString(p.Province),
		CertificateNumber: nullString(p.CertificateNumber),
	}
}

// scanGroups reads (key, count) rows; a NULL key becomes "".
func scanGroups(rows *sql.Rows) ([]entities.GroupCount, error) {
	defer rows.Close()
	out := []entities.GroupCount{}
	for rows.Next() {
		var key sql.NullString
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		out = append(out, entities.GroupCount{Key: nullString(key), Count: count})
	}
	return out, rows.Err()
}
