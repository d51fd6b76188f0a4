package v1

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"rs256_signing_service/internal/domain/signing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SigningHandler defines the interface for handling signing-related operations
type SigningHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	VerifyJWK(ctx *gin.Context)
}

// signingHandler struct holds the services
type signingHandler struct {
	signingService      signing.SigningService
	verificationService signing.VerificationService
}

// NewSigningHandler creates a new SigningHandler
func NewSigningHandler(signingService signing.SigningService, verificationService signing.VerificationService) SigningHandler {
	return &signingHandler{
		signingService:      signingService,
		verificationService: verificationService,
	}
}

// Sign handles the POST request to issue an RS256 signature
// @Summary Sign a message with an RSA private key
// @Description Decode the provided PEM private key and return the RSASSA-PKCS1-v1_5 SHA-256 signature over the message bytes. Nothing is stored.
// @Tags Signing
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Private key PEM and base64 message"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign [post]
func (handler *signingHandler) Sign(ctx *gin.Context) {
	var request SignRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid sign request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid base64 message: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	signature, err := handler.signingService.SignWithPEM(request.PrivateKeyPEM, message)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error signing message: %v", err.Error())
		ctx.JSON(statusCodeForError(err), errorResponse)
		return
	}

	response := SignResponse{
		RequestID:   uuid.New().String(),
		Algorithm:   signing.AlgorithmRS256,
		Signature:   base64.StdEncoding.EncodeToString(signature),
		KeySizeBits: len(signature) * 8,
	}

	ctx.JSON(http.StatusOK, response)
}

// Verify handles the POST request to check an RS256 signature against a PEM public key
// @Summary Verify a signature with an RSA public key
// @Description Decode the provided PEM public key and check the signature over the message bytes. A mismatch yields a normal valid=false result.
// @Tags Signing
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Public key PEM, base64 message and base64 signature"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /verify [post]
func (handler *signingHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid verify request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	message, signature, err := decodeMessageAndSignature(request.Message, request.Signature)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	valid, err := handler.verificationService.VerifyWithPEM(request.PublicKeyPEM, message, signature)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error verifying signature: %v", err.Error())
		ctx.JSON(statusCodeForError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{
		RequestID: uuid.New().String(),
		Valid:     valid,
	})
}

// VerifyJWK handles the POST request to check an RS256 signature against raw JWK components
// @Summary Verify a signature with raw JWK key components
// @Description Build a verifier from unpadded base64url modulus and exponent (RFC 7518 Base64urlUInt) and check the signature over the message bytes.
// @Tags Signing
// @Accept json
// @Produce json
// @Param requestBody body VerifyJWKRequest true "JWK components, base64 message and base64 signature"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /verify-jwk [post]
func (handler *signingHandler) VerifyJWK(ctx *gin.Context) {
	var request VerifyJWKRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid verify request: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	message, signature, err := decodeMessageAndSignature(request.Message, request.Signature)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	valid, err := handler.verificationService.VerifyWithRawComponents(request.Modulus, request.Exponent, message, signature)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error verifying signature: %v", err.Error())
		ctx.JSON(statusCodeForError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{
		RequestID: uuid.New().String(),
		Valid:     valid,
	})
}

// decodeMessageAndSignature decodes the base64 transport encoding of the
// message and signature fields.
func decodeMessageAndSignature(messageB64, signatureB64 string) ([]byte, []byte, error) {
	message, err := base64.StdEncoding.DecodeString(messageB64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base64 message: %v", err)
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base64 signature: %v", err)
	}

	return message, signature, nil
}

// statusCodeForError maps domain error kinds to HTTP status codes.
// Malformed or missing key material is the caller's fault (400); a
// structurally wrong signature length is an unprocessable entity (422).
func statusCodeForError(err error) int {
	switch {
	case errors.Is(err, signing.ErrSignatureLengthMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, signing.ErrInvalidKeyFormat),
		errors.Is(err, signing.ErrMissingKeyMaterial),
		errors.Is(err, signing.ErrKeyTooSmall):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
