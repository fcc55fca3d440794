// Package types defines the Store interface, entity types, and standard
// errors for the cattery catalog. Backends live under internal/; callers
// depend on this package only.
package types
