// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing
// synced wearable records and manually logged workouts. The package
// includes validation and logging for traceability and error handling.
package persistence
