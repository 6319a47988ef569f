package attendance

import "context"

// MarkingResolver drives the check-then-write marking flow on behalf of a UI.
// It holds at most one pending ConfirmationRequest at a time; a new RequestMark
// while one is pending replaces it (last request wins). The existence check is
// fail-open: an inability to check never blocks marking.
type MarkingResolver interface {
	// RequestMark starts a marking attempt. It either writes directly, parks a
	// ConfirmationRequest for an explicit Confirm/Cancel, or fails with a
	// notification. Failures are terminal for the attempt; nothing is retried.
	RequestMark(ctx context.Context, employeeID, date, status string) MarkOutcome

	// Confirm applies the pending status change. Errors with
	// ErrNoPendingConfirmation when nothing is pending.
	Confirm(ctx context.Context) (MarkOutcome, error)

	// Cancel discards the pending request with no side effect
	Cancel() MarkOutcome

	// Pending returns a copy of the live ConfirmationRequest, or nil
	Pending() *ConfirmationRequest

	// ViewEmployee selects the employee whose records the resolver caches.
	// A successful write for the viewed employee re-fetches this cache.
	ViewEmployee(ctx context.Context, employeeID string) ([]RecordResponse, error)

	// Records returns the cached records of the viewed employee
	Records() []RecordResponse
}
