// Package notify models notification fan-out as an explicit post-commit event
// list. Services build events after their primary mutation commits and hand
// them to a Notifier; dispatch is best-effort and never affects the mutation.
package notify

import "context"

// Audience selects the recipients of an event: explicit user IDs, plus every
// active user holding one of Roles. Resolved at dispatch time.
type Audience struct {
	UserIDs []string
	Roles   []string
}

// Event is one qualifying state transition to fan out.
type Event struct {
	Type     string
	Title    string
	Message  string
	Audience Audience
}

// Notifier dispatches events, at-most-once, fire-and-forget.
type Notifier interface {
	Dispatch(ctx context.Context, events []Event)
}
