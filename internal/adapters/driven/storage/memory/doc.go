// Package memory provides in-memory implementations of driven ports.
// They back tests and runs where no configuration file should be touched.
package memory
