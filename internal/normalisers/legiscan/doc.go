// Package legiscan maps raw LegiScan records onto the domain bill model.
//
// The normaliser applies the defaults the UI relies on: a missing title
// becomes "Untitled", a missing last action "No action recorded", and
// missing dates fall back to the time of the transform. It also derives the
// status label and originating chamber from upstream codes.
//
// Master-list records without an id or bill number are dropped rather than
// failing the whole listing. A single bill detail without them is an error.
package legiscan
