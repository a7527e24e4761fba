package v1

// BasePath is the URL prefix of this API version
const BasePath = "/api/v1"
