// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Resolver turns upstream operations into raw domain records; the
// BillService composes it with a normaliser for presentation.
package services
