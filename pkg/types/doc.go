// Package types defines the contact and book entity types, field
// validators, the Store interface, and standard error types for the
// Rolodex contact manager.
package types
