package v1

import (
	"rs256_signing_service/internal/domain/signing"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	signingService signing.SigningService,
	verificationService signing.VerificationService) {

	v1 := r.Group(BasePath)

	signingHandler := NewSigningHandler(signingService, verificationService)
	v1.POST("/sign", signingHandler.Sign)
	v1.POST("/verify", signingHandler.Verify)
	v1.POST("/verify-jwk", signingHandler.VerifyJWK)
}
