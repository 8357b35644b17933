// Package purchase provides the Purchase aggregate and its Line entities for
// the purchasing system.
//
// The package includes:
//   - Purchase: The aggregate root holding an ordered, never-aliased collection of lines
//   - Line: An immutable position (product, quantity, unit price)
//   - Status: A state machine enforcing the Draft -> Placed -> Settled workflow
//
// Key business rules:
//   - Lines must name a product, have a positive quantity, and a valid price
//   - Line changes (append, replace-by-identity) derive a new Purchase;
//     the source purchase's collection is never touched
//   - Only Draft purchases accept line changes
//   - A purchase can only be placed with at least one line, and only settled
//     after being placed
package purchase
