package output

import "context"

// Confirmer asks the operator whether total participant rows may be deleted.
type Confirmer interface {
	Confirm(ctx context.Context, total int64) (bool, error)
}
