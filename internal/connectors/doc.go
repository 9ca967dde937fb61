// Package connectors holds the transports that reach upstream legislative
// data providers. Each subpackage implements driven.Transport for one
// provider; legiscan is the only one today.
package connectors
