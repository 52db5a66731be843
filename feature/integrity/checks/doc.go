// Package checks holds the individual integrity checks: the database schema
// against the gorm models, and the folder layout of the storage bucket.
package checks
