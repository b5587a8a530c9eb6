package order

import (
	"encoding/json"
	"fmt"

	"ordermanager/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Its value is the literal
// used on the wire and in storage.
//
// Nominal lifecycle:
//
//	PENDING ──> CONFIRMED ──> PROCESSING ──> SHIPPED ──> DELIVERED
//	   │            │             │             │
//	   └────────────┴─────────────┴─────────────┴──────> CANCELLED
type Status string

const (
	// Unknown is the zero value and marks an omitted status.
	Unknown Status = ""

	Pending    Status = "PENDING"
	Confirmed  Status = "CONFIRMED"
	Processing Status = "PROCESSING"
	Shipped    Status = "SHIPPED"
	Delivered  Status = "DELIVERED"
	Cancelled  Status = "CANCELLED"
)

// statusTypeName is the name reported when a literal is rejected.
const statusTypeName = "OrderStatus"

var statusDescriptions = map[Status]string{
	Pending:    "Order is pending processing",
	Confirmed:  "Order has been confirmed",
	Processing: "Order is being processed",
	Shipped:    "Order has been shipped",
	Delivered:  "Order has been delivered",
	Cancelled:  "Order has been cancelled",
}

// nominalNext lists the forward step of each active status.
var nominalNext = map[Status]Status{
	Pending:    Confirmed,
	Confirmed:  Processing,
	Processing: Shipped,
	Shipped:    Delivered,
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Processing, Shipped, Delivered, Cancelled}
}

// StatusNames returns the literals of Statuses.
func StatusNames() []string {
	statuses := Statuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

// ParseStatus converts a literal into a Status. Matching is case-sensitive.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate reports whether s is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusDescriptions[s]; !ok {
		return errs.NewEnumValueIsInvalidError(statusTypeName, string(s), StatusNames())
	}
	return nil
}

func (s Status) String() string {
	if s == Unknown {
		return "UNKNOWN"
	}
	return string(s)
}

// Description returns a human-readable explanation of the status.
func (s Status) Description() string {
	return statusDescriptions[s]
}

// IsCompleted reports whether the order reached a terminal state.
func (s Status) IsCompleted() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order can still progress.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsCompleted()
}

// IsNominalTransition reports whether moving from s to next follows the
// nominal lifecycle. Staying in the same status is always nominal.
func (s Status) IsNominalTransition(next Status) bool {
	if s == next {
		return true
	}
	if next == Cancelled {
		return s.IsActive()
	}
	return nominalNext[s] == next
}

// UnmarshalJSON accepts a JSON string holding one of the status literals.
// An unknown literal yields an *errs.EnumValueIsInvalidError so callers can
// report the allowed set.
func (s *Status) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Unknown
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status must be a JSON string: %w", err)
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TransitionPolicy decides which status changes are accepted.
type TransitionPolicy int

const (
	// Permissive accepts any status change, including from terminal states.
	Permissive TransitionPolicy = iota

	// Strict only accepts nominal transitions and rejects full updates of
	// completed orders.
	Strict
)

// CheckTransition returns an error when the policy rejects moving from -> to.
func (p TransitionPolicy) CheckTransition(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if p == Strict && !from.IsNominalTransition(to) {
		return errs.NewStatusTransitionIsInvalidError(from.String(), to.String())
	}
	return nil
}

// CheckModifiable returns an error when the policy forbids a full update of
// an order in the given status.
func (p TransitionPolicy) CheckModifiable(id int64, current Status) error {
	if p == Strict && current.IsCompleted() {
		return errs.NewObjectNotModifiableError("order", id, fmt.Sprintf("order is %s", current))
	}
	return nil
}
