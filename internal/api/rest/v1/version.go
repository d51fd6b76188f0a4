package v1

// BasePath is the route prefix for version 1 of the signing API.
const BasePath = "/api/v1/rs256"
