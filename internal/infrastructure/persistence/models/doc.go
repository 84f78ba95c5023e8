// Package models contains persistence models for aggregates whose line
// items live in child tables. Flat aggregates are persisted directly from
// their domain structs; only Order and Sale need an explicit mapping.
package models
