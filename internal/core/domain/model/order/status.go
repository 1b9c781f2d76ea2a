package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the marketplace workflow.
//
// State transitions (strict mode):
//
//	Pending ──┬──> Accepted ──┬──> Completed ──> Deleted
//	          │       │       └───────────────> Deleted
//	          ├──> Rejected ──────────────────> Deleted
//	          └───────────────────────────────> Deleted
//
// Deleted is a soft-delete tombstone: it can be reached from any state and
// never left, in either transition mode.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order placed by a buyer.
	Pending

	// Accepted indicates the merchant has accepted the order.
	Accepted

	// Rejected indicates the merchant has declined the order.
	Rejected

	// Completed indicates the merchant has fulfilled the order.
	// Completed orders leave the merchant dashboard but stay in the
	// buyer's history.
	Completed

	// Deleted is the soft-delete tombstone. Deleted orders are excluded
	// from every buyer-facing and merchant-facing view but remain in
	// storage. No transition leads out of Deleted.
	Deleted
)

// TransitionMode selects how strictly status transitions are enforced.
type TransitionMode int

const (
	// StrictTransitions enforces the state machine: only the documented
	// transitions are allowed and terminal states stay terminal.
	StrictTransitions TransitionMode = iota

	// PermissiveTransitions allows a merchant to overwrite any status
	// with any other valid status, as a manual-override escape hatch.
	// Deleted remains irreversible even in this mode.
	PermissiveTransitions
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Completed: "completed",
		Deleted:   "deleted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Completed: "completed",
		Deleted:   "deleted",
	}
}

// strictTransitions lists the allowed next states per current state.
var strictTransitions = map[Status][]Status{
	Pending:   {Accepted, Rejected, Deleted},
	Accepted:  {Completed, Rejected, Deleted},
	Rejected:  {Deleted},
	Completed: {Deleted},
	Deleted:   {},
}

// StatusFromString parses the textual form used on the wire and in the
// original data. Unrecognized values are rejected rather than stored.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a recognized status", s))
}

// TransitionModeFromString parses a configuration value into a
// TransitionMode. The empty string defaults to strict.
func TransitionModeFromString(s string) (TransitionMode, error) {
	switch s {
	case "", "strict":
		return StrictTransitions, nil
	case "permissive":
		return PermissiveTransitions, nil
	default:
		return StrictTransitions, errs.NewValueIsInvalidErrorWithCause(
			"transition mode",
			fmt.Errorf("%q is not a recognized transition mode", s),
		)
	}
}

// Validate checks if the Status value is one of the closed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, matching the values the
// original system stored. It implements fmt.Stringer and is safe to call
// on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no strict-mode transition other than soft
// deletion exists from this status.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed || s == Deleted
}

// CanTransitionTo validates a transition from the current status to next
// under the given mode.
//
// Rules common to both modes:
//   - next must be a valid status
//   - nothing leaves Deleted
//
// Strict mode additionally requires the transition to appear in the state
// machine; permissive mode allows any other overwrite, including setting
// the same status again.
func (s Status) CanTransitionTo(next Status, mode TransitionMode) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if s == Deleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order is deleted and cannot transition to %s", next),
		)
	}

	if mode == PermissiveTransitions {
		return nil
	}

	for _, allowed := range strictTransitions[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s, next),
	)
}
