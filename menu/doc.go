// Package menu is the interactive front end of topolab: a numbered,
// line-oriented menu read from any io.Reader, so sessions can be scripted
// and tested.
//
// Validation and auto-fix rule sets are not part of topolab. A Session
// calls whatever Validator and AutoFixer it is given and says so when none
// is configured.
package menu
