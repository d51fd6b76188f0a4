// Package config holds the settings structures for the signing service and
// its tooling, validated with go-playground/validator.
package config
