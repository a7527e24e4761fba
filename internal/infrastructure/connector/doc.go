// Package connector provides HTTP clients for the external wearable APIs:
// the Oura V2 API (personal access token) and the Polar AccessLink API
// (OAuth2 authorization code flow with a file backed token store).
package connector
