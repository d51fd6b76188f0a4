package app

import (
	"fmt"

	"rs256_signing_service/internal/domain/signing"
	"rs256_signing_service/internal/infrastructure/cryptography"
	"rs256_signing_service/internal/pkg/logger"
)

// signingService implements the SigningService interface for callers that
// hold PEM-encoded private key text. It is stateless: every call decodes the
// key independently and nothing is retained between calls.
type signingService struct {
	keyDecoder signing.KeyDecoder
	logger     logger.Logger
}

// NewSigningService creates a new signingService instance
func NewSigningService(keyDecoder signing.KeyDecoder, logger logger.Logger) (signing.SigningService, error) {
	return &signingService{
		keyDecoder: keyDecoder,
		logger:     logger,
	}, nil
}

// SignWithPEM decodes the private key PEM, binds a signer to it and returns
// the signature over message.
func (s *signingService) SignWithPEM(privateKeyPEM string, message []byte) ([]byte, error) {
	pair, err := s.keyDecoder.DecodePEMKeyPair(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	signer, err := cryptography.NewRS256Signer(pair, s.logger)
	if err != nil {
		return nil, err
	}

	return signer.Sign(message)
}

// verificationService implements the VerificationService interface. Same
// stateless shape as signingService.
type verificationService struct {
	keyDecoder signing.KeyDecoder
	logger     logger.Logger
}

// NewVerificationService creates a new verificationService instance
func NewVerificationService(keyDecoder signing.KeyDecoder, logger logger.Logger) (signing.VerificationService, error) {
	return &verificationService{
		keyDecoder: keyDecoder,
		logger:     logger,
	}, nil
}

// VerifyWithPEM decodes the public key PEM, binds a verifier to it and checks
// signature over message.
func (s *verificationService) VerifyWithPEM(publicKeyPEM string, message []byte, signature []byte) (bool, error) {
	pair, err := s.keyDecoder.DecodePEMKeyPair(publicKeyPEM)
	if err != nil {
		return false, fmt.Errorf("failed to decode public key: %w", err)
	}

	verifier, err := cryptography.NewRS256Verifier(pair, s.logger)
	if err != nil {
		return false, err
	}

	return verifier.Verify(message, signature)
}

// VerifyWithRawComponents builds a verifier from unpadded base64url modulus
// and exponent text and checks signature over message.
func (s *verificationService) VerifyWithRawComponents(modulusB64url, exponentB64url string, message []byte, signature []byte) (bool, error) {
	verifier, err := cryptography.NewRS256VerifierFromRawComponents(modulusB64url, exponentB64url, s.logger)
	if err != nil {
		return false, err
	}

	return verifier.Verify(message, signature)
}
