// Package kernel contains shared value objects used across the domain
// model. It currently provides the UUID identity type that merchants,
// buyers, orders, and sessions use as their unique identifier.
//
// Kernel types are immutable value objects: they are created through
// factory functions, validate themselves, and are safe to copy and to use
// concurrently.
package kernel
