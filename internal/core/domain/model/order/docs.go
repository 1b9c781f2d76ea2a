// Package order provides domain entities and business logic for order
// management in the marketplace. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding identity, shop and buyer
//     references, the immutable line items, and the current status
//   - Status: a state machine that enforces valid status transitions
//     under a configurable strict or permissive mode
//   - LineItem: a validated {name, quantity} value object, with the
//     canonical serialized encoding used for persistence
//
// Key business rules:
//   - Orders are placed by buyers and always start in Pending status
//   - Items never change after creation; only the status does
//   - Deleted is a soft-delete tombstone reachable from any status,
//     idempotent, and irreversible in both transition modes
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
