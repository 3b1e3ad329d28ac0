package jobs

import (
	"context"
	"time"
)

// SendOverdueLoanReminders emails every borrower holding an active loan
// older than the configured threshold.
func (jr *JobRunner) SendOverdueLoanReminders() {
	jr.runWithRecovery("SendOverdueLoanReminders", func() {
		ctx := context.Background()

		threshold := time.Duration(jr.config.Lending.OverdueAfterDays) * 24 * time.Hour
		cutoff := time.Now().Add(-threshold)

		loans, err := jr.store.ListOverdueLoans(ctx, cutoff)
		if err != nil {
			jr.log.Error("Failed to list overdue loans", "error", err)
			return
		}

		sent := 0
		for _, loan := range loans {
			daysHeld := int(time.Since(loan.BorrowedOn).Hours() / 24)
			if err := jr.email.SendOverdueLoanReminder(ctx, loan.BorrowerEmail, loan.BorrowerName, loan.BookTitle, daysHeld); err != nil {
				jr.log.Error("Failed to send overdue reminder", "transaction_id", loan.TransactionID, "error", err)
				continue
			}
			sent++
		}

		jr.log.Info("Sent overdue loan reminders", "overdue", len(loans), "sent", sent)
	})
}
