// Package kernel provides core domain primitives for the purchasing system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A value object for positive single-currency amounts in minor units
//
// Both primitives are created exclusively through validating constructors and
// are immutable afterwards; arithmetic on Money returns new values. They are
// thread-safe and suitable for concurrent use.
package kernel
