// Package services contains stateless domain services that coordinate
// business rules spanning multiple aggregates.
//
// The package provides AccessPolicy, the visibility and access decision
// point of the marketplace: given a session and its role it decides which
// orders a principal may see and which it may mutate. Centralizing these
// decisions keeps the order ledger a pure CRUD primitive and makes every
// authorization rule independently testable.
package services
