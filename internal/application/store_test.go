package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"presensicheck/internal/domain"
	"presensicheck/internal/domain/entities"
)

// memStore is an in-memory kegiatan/presensi pair implementing both
// repository ports.
type memStore struct {
	events       []entities.Event
	participants []entities.Participant

	participantQueries int
	failDelete         error
}

func (m *memStore) FindByReference(_ context.Context, reference string) (*entities.Event, error) {
	for _, e := range m.events {
		if e.Reference == reference {
			e := e
			return &e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (m *memStore) DeleteWithParticipants(_ context.Context, eventID uint) (int64, error) {
	if m.failDelete != nil {
		return 0, m.failDelete
	}
	var kept []entities.Participant
	var deleted int64
	for _, p := range m.participants {
		if p.EventID == eventID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	var events []entities.Event
	for _, e := range m.events {
		if e.ID != eventID {
			events = append(events, e)
		}
	}
	m.participants, m.events = kept, events
	return deleted, nil
}

func (m *memStore) forEvent(eventID uint) []entities.Participant {
	m.participantQueries++
	var out []entities.Participant
	for _, p := range m.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out
}

func (m *memStore) CountByEventID(_ context.Context, eventID uint) (int64, error) {
	return int64(len(m.forEvent(eventID))), nil
}

// SampleByEventID ignores limit so the service has to enforce it.
func (m *memStore) SampleByEventID(_ context.Context, eventID uint, _ int) ([]entities.Participant, error) {
	return m.forEvent(eventID), nil
}

func (m *memStore) CountByEmailDomain(_ context.Context, eventID uint) ([]entities.GroupCount, error) {
	return group(m.forEvent(eventID), func(p entities.Participant) string {
		return p.Email[strings.LastIndex(p.Email, "@")+1:]
	}, 0), nil
}

func (m *memStore) TopProvinces(_ context.Context, eventID uint, limit int) ([]entities.GroupCount, error) {
	return group(m.forEvent(eventID), func(p entities.Participant) string { return p.Province }, limit), nil
}

func group(ps []entities.Participant, key func(entities.Participant) string, limit int) []entities.GroupCount {
	counts := map[string]int64{}
	for _, p := range ps {
		counts[key(p)]++
	}
	out := make([]entities.GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, entities.GroupCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

var (
	testDomains   = []string{"gmail.com", "yahoo.com", "kemdikbud.go.id", "belajar.id"}
	testProvinces = []string{
		"Sulawesi Selatan", "Sulawesi Barat", "Sulawesi Tengah", "Gorontalo",
		"Jawa Timur", "Papua", "Maluku", "Bali",
	}
)

// seed creates the test event plus n participants with varied email domains
// and provinces, next to an unrelated event with a few rows of its own.
func seed(n int) *memStore {
	m := &memStore{
		events: []entities.Event{
			{ID: 1, Name: "Rapat Koordinasi", Reference: "001/BBPMP/2026"},
			{ID: 42, Name: "Uji Beban 3000 Peserta", Reference: "TEST-3000/2026"},
		},
	}
	for i := 1; i <= 3; i++ {
		m.participants = append(m.participants, entities.Participant{
			ID: uint(i), EventID: 1, FullName: fmt.Sprintf("Pegawai %d", i),
			Email: fmt.Sprintf("pegawai%d@bbpmp.id", i), Province: "Sulawesi Selatan",
		})
	}
	for i := 1; i <= n; i++ {
		m.participants = append(m.participants, entities.Participant{
			ID:                uint(1000 + i),
			EventID:           42,
			FullName:          fmt.Sprintf("Peserta Uji %04d", i),
			Email:             fmt.Sprintf("peserta%04d@%s", i, testDomains[i%len(testDomains)]),
			Unit:              fmt.Sprintf("SD Negeri %d", i%50+1),
			Province:          testProvinces[(i*i)%len(testProvinces)],
			CertificateNumber: fmt.Sprintf("%d/TEST-3000/2026", i),
		})
	}
	return m
}

type fixedConfirmer struct {
	answer bool
	err    error
	asked  []int64
}

func (c *fixedConfirmer) Confirm(_ context.Context, total int64) (bool, error) {
	c.asked = append(c.asked, total)
	return c.answer, c.err
}
