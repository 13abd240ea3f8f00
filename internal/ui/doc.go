// Package ui holds the color themes shared by the CLI and the dashboard.
// Presentation code reads colors through the Color* accessors so that
// --no-color and NO_COLOR apply everywhere.
package ui
