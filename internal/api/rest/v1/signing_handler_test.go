//go:build unit
// +build unit

package v1

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"rs256_signing_service/internal/app"
	"rs256_signing_service/internal/infrastructure/cryptography"
	"rs256_signing_service/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler        SigningHandler
	privateKeyPEM  string
	publicKeyPEM   string
	modulusB64url  string
	exponentB64url string
}

func setupSigningHandler(t *testing.T) *handlerFixture {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	keyDecoder, err := cryptography.NewKeyDecoder(logger)
	require.NoError(t, err)

	signingService, err := app.NewSigningService(keyDecoder, logger)
	require.NoError(t, err)

	verificationService, err := app.NewVerificationService(keyDecoder, logger)
	require.NoError(t, err)

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(rsaKey),
	})

	pubDER, err := x509.MarshalPKIXPublicKey(&rsaKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	return &handlerFixture{
		handler:        NewSigningHandler(signingService, verificationService),
		privateKeyPEM:  string(privPEM),
		publicKeyPEM:   string(pubPEM),
		modulusB64url:  base64.RawURLEncoding.EncodeToString(rsaKey.N.Bytes()),
		exponentB64url: base64.RawURLEncoding.EncodeToString(big.NewInt(int64(rsaKey.E)).Bytes()),
	}
}

func postJSON(t *testing.T, handle gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, err := http.NewRequest("POST", "/", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handle(c)
	return w
}

func (f *handlerFixture) signMessage(t *testing.T, message []byte) []byte {
	t.Helper()

	w := postJSON(t, f.handler.Sign, SignRequest{
		PrivateKeyPEM: f.privateKeyPEM,
		Message:       base64.StdEncoding.EncodeToString(message),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response SignResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	signature, err := base64.StdEncoding.DecodeString(response.Signature)
	require.NoError(t, err)
	return signature
}

func TestSigningHandler_Sign(t *testing.T) {
	fixture := setupSigningHandler(t)

	t.Run("Success", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Sign, SignRequest{
			PrivateKeyPEM: fixture.privateKeyPEM,
			Message:       base64.StdEncoding.EncodeToString([]byte("hello world")),
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response SignResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RS256", response.Algorithm)
		assert.Equal(t, 2048, response.KeySizeBits)
		assert.NotEmpty(t, response.RequestID)

		signature, err := base64.StdEncoding.DecodeString(response.Signature)
		require.NoError(t, err)
		assert.Len(t, signature, 256)
	})

	t.Run("PublicKeyOnly", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Sign, SignRequest{
			PrivateKeyPEM: fixture.publicKeyPEM,
			Message:       base64.StdEncoding.EncodeToString([]byte("hello world")),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing key material")
	})

	t.Run("MalformedPEM", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Sign, SignRequest{
			PrivateKeyPEM: "not a pem",
			Message:       base64.StdEncoding.EncodeToString([]byte("hello world")),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Sign, SignRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSigningHandler_Verify(t *testing.T) {
	fixture := setupSigningHandler(t)

	message := []byte("hello world")
	signature := fixture.signMessage(t, message)

	t.Run("ValidSignature", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Verify, VerifyRequest{
			PublicKeyPEM: fixture.publicKeyPEM,
			Message:      base64.StdEncoding.EncodeToString(message),
			Signature:    base64.StdEncoding.EncodeToString(signature),
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
	})

	t.Run("TamperedMessage", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Verify, VerifyRequest{
			PublicKeyPEM: fixture.publicKeyPEM,
			Message:      base64.StdEncoding.EncodeToString([]byte("hello world!")),
			Signature:    base64.StdEncoding.EncodeToString(signature),
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Valid)
	})

	t.Run("WrongSignatureLength", func(t *testing.T) {
		w := postJSON(t, fixture.handler.Verify, VerifyRequest{
			PublicKeyPEM: fixture.publicKeyPEM,
			Message:      base64.StdEncoding.EncodeToString(message),
			Signature:    base64.StdEncoding.EncodeToString(signature[:100]),
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "signature length mismatch")
	})
}

func TestSigningHandler_VerifyJWK(t *testing.T) {
	fixture := setupSigningHandler(t)

	message := []byte("hello world")
	signature := fixture.signMessage(t, message)

	t.Run("ValidSignature", func(t *testing.T) {
		w := postJSON(t, fixture.handler.VerifyJWK, VerifyJWKRequest{
			Modulus:   fixture.modulusB64url,
			Exponent:  fixture.exponentB64url,
			Message:   base64.StdEncoding.EncodeToString(message),
			Signature: base64.StdEncoding.EncodeToString(signature),
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
	})

	t.Run("AgreesWithPEMVerifier", func(t *testing.T) {
		// a verifier built from raw components and one built from the PEM
		// public key must agree on every input
		inputs := [][]byte{signature, make([]byte, len(signature))}

		for i, sig := range inputs {
			t.Run(fmt.Sprintf("input-%d", i), func(t *testing.T) {
				pemResult := postJSON(t, fixture.handler.Verify, VerifyRequest{
					PublicKeyPEM: fixture.publicKeyPEM,
					Message:      base64.StdEncoding.EncodeToString(message),
					Signature:    base64.StdEncoding.EncodeToString(sig),
				})
				jwkResult := postJSON(t, fixture.handler.VerifyJWK, VerifyJWKRequest{
					Modulus:   fixture.modulusB64url,
					Exponent:  fixture.exponentB64url,
					Message:   base64.StdEncoding.EncodeToString(message),
					Signature: base64.StdEncoding.EncodeToString(sig),
				})

				assert.Equal(t, pemResult.Code, jwkResult.Code)

				var pemResponse, jwkResponse VerifyResponse
				require.NoError(t, json.Unmarshal(pemResult.Body.Bytes(), &pemResponse))
				require.NoError(t, json.Unmarshal(jwkResult.Body.Bytes(), &jwkResponse))
				assert.Equal(t, pemResponse.Valid, jwkResponse.Valid)
			})
		}
	})

	t.Run("EmptyExponent", func(t *testing.T) {
		w := postJSON(t, fixture.handler.VerifyJWK, VerifyJWKRequest{
			Modulus:   fixture.modulusB64url,
			Exponent:  "",
			Message:   base64.StdEncoding.EncodeToString(message),
			Signature: base64.StdEncoding.EncodeToString(signature),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
