// Package launchdash is an interactive dashboard over launch records.
//
// A Dataset is loaded once from CSV and never changes. Two controls, a launch
// site selection and a payload mass range, drive two views:
//
//	proportion   successful launches per site, or success vs. failure for one site
//	correlation  payload mass vs. outcome, one series per booster version
//
// The binder package owns the control state and recomputes only the views
// that read a changed control. The engine package holds the pure
// filter → aggregate → chart pipeline. The server package exposes the binder
// over HTTP and cmd/launchdash is the command-line entry point.
package launchdash
