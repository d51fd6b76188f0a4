package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rs256_signing_service/internal/domain/keys"
	"rs256_signing_service/internal/domain/signing"
	"rs256_signing_service/internal/infrastructure/cryptography"
	"rs256_signing_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SignCommandHandler encapsulates logic for handling RS256 operations via CLI.
type SignCommandHandler struct {
	keyDecoder signing.KeyDecoder
	logger     logger.Logger
}

// NewSignCommandHandler initializes a new SignCommandHandler with logging and a key decoder.
func NewSignCommandHandler() (*SignCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyDecoder, err := cryptography.NewKeyDecoder(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key decoder: %w", err)
	}

	return &SignCommandHandler{
		keyDecoder: keyDecoder,
		logger:     loggerInstance,
	}, nil
}

// SignCmd signs a file using RS256 and saves the signature
func (commandHandler *SignCommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	signer, err := commandHandler.signerFromFile(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := signer.Sign(message)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if signatureFilePath == "" {
		signatureFilePath = fmt.Sprintf("%s.sig", uuid.New().String())
	}

	err = os.WriteFile(signatureFilePath, signature, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyCmd verifies a signature using an RSA public key PEM file
func (commandHandler *SignCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	verifier, err := commandHandler.verifierFromFile(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.verifyFiles(verifier, inputFilePath, signatureFilePath)
}

// VerifyJWKCmd verifies a signature using raw base64url JWK key components
func (commandHandler *SignCommandHandler) VerifyJWKCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	modulus, err := cmd.Flags().GetString("modulus")
	if err != nil {
		commandHandler.logger.Error("invalid modulus flag: ", err)
		return
	}
	exponent, err := cmd.Flags().GetString("exponent")
	if err != nil {
		commandHandler.logger.Error("invalid exponent flag: ", err)
		return
	}

	verifier, err := cryptography.NewRS256VerifierFromRawComponents(modulus, exponent, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.verifyFiles(verifier, inputFilePath, signatureFilePath)
}

// InspectKeyCmd prints the key halves and modulus size found in a PEM file
func (commandHandler *SignCommandHandler) InspectKeyCmd(cmd *cobra.Command, _ []string) {
	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag: ", err)
		return
	}

	pair, err := commandHandler.decodeKeyFile(keyFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if pair.Private != nil {
		commandHandler.logger.Info("Key type: ", signing.KeyTypePrivate, ", modulus size: ", pair.Private.Size()*8, " bits")
		return
	}
	commandHandler.logger.Info("Key type: ", signing.KeyTypePublic, ", modulus size: ", pair.Public.Size()*8, " bits")
}

func (commandHandler *SignCommandHandler) decodeKeyFile(keyPath string) (*keys.KeyPair, error) {
	pemText, err := os.ReadFile(filepath.Clean(keyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read key file: %w", err)
	}

	return commandHandler.keyDecoder.DecodePEMKeyPair(string(pemText))
}

func (commandHandler *SignCommandHandler) signerFromFile(privateKeyPath string) (signing.Signer, error) {
	pair, err := commandHandler.decodeKeyFile(privateKeyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewRS256Signer(pair, commandHandler.logger)
}

func (commandHandler *SignCommandHandler) verifierFromFile(publicKeyPath string) (signing.Verifier, error) {
	pair, err := commandHandler.decodeKeyFile(publicKeyPath)
	if err != nil {
		return nil, err
	}
	return cryptography.NewRS256Verifier(pair, commandHandler.logger)
}

func (commandHandler *SignCommandHandler) verifyFiles(verifier signing.Verifier, inputFilePath, signatureFilePath string) {
	message, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := os.ReadFile(filepath.Clean(signatureFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := verifier.Verify(message, signature)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Error("Signature is invalid")
	}
}

// InitSignCommands registers RS256 signing-related commands
func InitSignCommands(rootCmd *cobra.Command) error {
	handler, err := NewSignCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create sign command handler %w", err)
	}

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file using RS256",
		Run:   handler.SignCmd,
	}
	signCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signCmd.Flags().StringP("private-key", "", "", "Path to RSA private key PEM file")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature using an RSA public key",
		Run:   handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input-file", "", "", "Path to the signed file")
	verifyCmd.Flags().StringP("signature-file", "", "", "Path to the signature file")
	verifyCmd.Flags().StringP("public-key", "", "", "Path to RSA public key PEM file")
	rootCmd.AddCommand(verifyCmd)

	var verifyJWKCmd = &cobra.Command{
		Use:   "verify-jwk",
		Short: "Verify a file signature using raw JWK key components",
		Run:   handler.VerifyJWKCmd,
	}
	verifyJWKCmd.Flags().StringP("input-file", "", "", "Path to the signed file")
	verifyJWKCmd.Flags().StringP("signature-file", "", "", "Path to the signature file")
	verifyJWKCmd.Flags().StringP("modulus", "", "", "Base64url modulus (JWK \"n\")")
	verifyJWKCmd.Flags().StringP("exponent", "", "", "Base64url public exponent (JWK \"e\")")
	rootCmd.AddCommand(verifyJWKCmd)

	var inspectKeyCmd = &cobra.Command{
		Use:   "inspect-key",
		Short: "Show the key halves and modulus size of a PEM key file",
		Run:   handler.InspectKeyCmd,
	}
	inspectKeyCmd.Flags().StringP("key-file", "", "", "Path to PEM key file")
	rootCmd.AddCommand(inspectKeyCmd)

	return nil
}
