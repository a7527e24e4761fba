// Package oura defines the entities, queries and contracts for wearable data
// pulled from the Oura V2 API: daily sleep, activity and readiness summaries
// and raw heart rate samples.
package oura
