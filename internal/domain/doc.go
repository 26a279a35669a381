// Package domain defines the data models and contracts shared across the
// app. It contains plain types and interfaces only; the types and
// interfaces subpackages hold the definitions and this package re-exports
// them for compact imports.
package domain
