// Package polar defines the entities and contracts for training data pulled
// from the Polar AccessLink API, including the transactional fetch cycle and
// the OAuth2 token the flow produces.
package polar
