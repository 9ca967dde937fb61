// Package domain defines the core entities for legis.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Session: A legislative session for a jurisdiction
//   - BillSummary: A bill as listed in a session's master list
//   - BillDetail: The full bill record (sponsors, history, documents)
//   - Raw records: Loosely typed upstream payloads before normalisation
//
// It also holds the pure derivations from upstream codes (StatusLabel,
// ChamberOf) and the error kinds shared across the core.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
