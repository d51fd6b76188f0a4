package v1

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SignRequest carries the key material and message for a signing call.
// The message travels base64-encoded since it is an opaque byte string.
type SignRequest struct {
	PrivateKeyPEM string `json:"private_key_pem" validate:"required"`
	Message       string `json:"message" validate:"required,base64"`
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	return validateStruct(r)
}

// SignResponse carries the signature produced for a SignRequest.
type SignResponse struct {
	RequestID   string `json:"request_id"`
	Algorithm   string `json:"algorithm"`
	Signature   string `json:"signature"`
	KeySizeBits int    `json:"key_size_bits"`
}

// VerifyRequest carries a PEM public key, message and signature to check.
type VerifyRequest struct {
	PublicKeyPEM string `json:"public_key_pem" validate:"required"`
	Message      string `json:"message" validate:"required,base64"`
	Signature    string `json:"signature" validate:"required,base64"`
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

// VerifyJWKRequest carries JWK-style raw key components (unpadded base64url,
// RFC 7518 Base64urlUInt), message and signature to check.
type VerifyJWKRequest struct {
	Modulus   string `json:"n" validate:"required,base64rawurl"`
	Exponent  string `json:"e" validate:"required,base64rawurl"`
	Message   string `json:"message" validate:"required,base64"`
	Signature string `json:"signature" validate:"required,base64"`
}

// Validate for validating VerifyJWKRequest struct
func (r *VerifyJWKRequest) Validate() error {
	return validateStruct(r)
}

// VerifyResponse reports the verification outcome. A false Valid is a normal
// result, not an error.
type VerifyResponse struct {
	RequestID string `json:"request_id"`
	Valid     bool   `json:"valid"`
}

// ErrorResponse represents the structure of an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
