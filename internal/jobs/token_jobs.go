package jobs

import (
	"context"
	"time"
)

// PurgeExpiredActivationTokens deletes activation tokens that expired
// without ever being validated.
func (jr *JobRunner) PurgeExpiredActivationTokens() {
	jr.runWithRecovery("PurgeExpiredActivationTokens", func() {
		ctx := context.Background()

		deleted, err := jr.store.DeleteExpired(ctx, time.Now())
		if err != nil {
			jr.log.Error("Failed to purge expired tokens", "error", err)
			return
		}
		jr.log.Info("Purged expired activation tokens", "count", deleted)
	})
}
