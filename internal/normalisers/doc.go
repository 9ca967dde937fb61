// Package normalisers turns raw upstream records and documents into the
// shapes the rest of legis works with.
//
//   - legiscan: implements driven.BillNormaliser for LegiScan records
//   - html: reduces HTML bill texts to plain text
package normalisers
