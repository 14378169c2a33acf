package completion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Complete always returns a non-empty reply; provider outages end in
	// the local fallback.
	Complete(ctx context.Context, input CompleteInput) CompleteOutput
}
