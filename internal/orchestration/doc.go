// Package orchestration runs one or more prime searches concurrently and
// aggregates their results. It decouples the searches from presentation via
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
