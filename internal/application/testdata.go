package application

import (
	"context"
	"fmt"

	"presensicheck/internal/domain/entities"
	"presensicheck/internal/ports/input"
	"presensicheck/internal/ports/output"
)

const (
	// SampleSize is the maximum number of participants shown by Verify.
	SampleSize = 5
	// TopProvinceCount is the maximum number of province groups shown by Verify.
	TopProvinceCount = 5
)

var _ input.TestDataUseCase = (*TestDataService)(nil)

// TestDataService verifies and removes the synthetic test event identified
// by its reference number.
type TestDataService struct {
	eventRepo       output.EventRepository
	participantRepo output.ParticipantRepository
	reference       string
	expected        int64
}

func NewTestDataService(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	reference string,
	expected int64,
) *TestDataService {
	return &TestDataService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		reference:       reference,
		expected:        expected,
	}
}

// Verify returns domain.ErrEventNotFound, without touching presensi, when the
// test event does not exist.
func (s *TestDataService) Verify(ctx context.Context) (*entities.VerifyReport, error) {
	event, err := s.eventRepo.FindByReference(ctx, s.reference)
	if err != nil {
		return nil, err
	}

	report := &entities.VerifyReport{Event: *event, Expected: s.expected}

	if report.Total, err = s.participantRepo.CountByEventID(ctx, event.ID); err != nil {
		return nil, err
	}

	sample, err := s.participantRepo.SampleByEventID(ctx, event.ID, SampleSize)
	if err != nil {
		return nil, err
	}
	if len(sample) > SampleSize {
		sample = sample[:SampleSize]
	}
	report.Sample = sample

	if report.EmailDomains, err = s.participantRepo.CountByEmailDomain(ctx, event.ID); err != nil {
		return nil, err
	}

	provinces, err := s.participantRepo.TopProvinces(ctx, event.ID, TopProvinceCount)
	if err != nil {
		return nil, err
	}
	if len(provinces) > TopProvinceCount {
		provinces = provinces[:TopProvinceCount]
	}
	report.TopProvinces = provinces

	return report, nil
}

// Cleanup asks confirmer before deleting anything. Only a positive answer
// leads to DeleteWithParticipants; any other answer leaves the data untouched.
func (s *TestDataService) Cleanup(ctx context.Context, confirmer output.Confirmer) (*entities.CleanupResult, error) {
	event, err := s.eventRepo.FindByReference(ctx, s.reference)
	if err != nil {
		return nil, err
	}

	total, err := s.participantRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	result := &entities.CleanupResult{Event: *event, Total: total}

	ok, err := confirmer.Confirm(ctx, total)
	if err != nil {
		return nil, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		result.Cancelled = true
		return result, nil
	}

	if result.Deleted, err = s.eventRepo.DeleteWithParticipants(ctx, event.ID); err != nil {
		return nil, err
	}
	return result, nil
}
