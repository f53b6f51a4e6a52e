package input

import (
	"context"

	"presensicheck/internal/domain/entities"
	"presensicheck/internal/ports/output"
)

type TestDataUseCase interface {
	Verify(ctx context.Context) (*entities.VerifyReport, error)
	Cleanup(ctx context.Context, confirmer output.Confirmer) (*entities.CleanupResult, error)
}
