// Package html reduces HTML bill texts to readable plain text.
//
// State legislatures publish most bill texts as PDF, but several post
// HTML renditions. PlainText strips markup, scripts and styles and
// decodes entities so a text can be read in a terminal or piped to
// other tools.
package html
