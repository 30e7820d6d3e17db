package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicknotes/quicknotes/models"
)

const (
	testSignKey  = "0123456789abcdef0123456789abcdef"
	testIssuer   = "QuickNotes"
	testAudience = "QuickNotes"
)

func testUser() models.User {
	return models.User{UserID: 42, Username: "alice"}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, testUser(), 30*time.Minute, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "alice", token.Username)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", testAudience, testUser(), time.Minute, testSignKey)
	require.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, "", testUser(), time.Minute, testSignKey)
	require.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, testAudience, testUser(), 0, testSignKey)
	require.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, testAudience, testUser(), time.Minute, "")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, testUser(), 30*time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)

	sub, err := parsed.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(42, 10), sub)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, testUser(), 30*time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key-entirely-32-bytes!!!", testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("SomeoneElse", testAudience, testUser(), 30*time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "SomeoneElse", testUser(), 30*time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-30 * time.Minute)),
		},
		Username: "alice",
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	// correct signature, expired lifetime
	_, err = ValidateAndParseJWTToken(expired, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_FutureIssuedAt(t *testing.T) {
	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(now.Add(time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour)),
		},
		Username: "alice",
	}
	fromTheFuture, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	// unexpired, but claims to have been issued an hour from now
	_, err = ValidateAndParseJWTToken(fromTheFuture, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer, testAudience)
	require.Error(t, err)

	_, err = ValidateAndParseJWTToken("", testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsUnsignedAlg(t *testing.T) {
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(unsigned, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("Bearer")
	require.Error(t, err)

	_, err = ParseBearerToken("")
	require.Error(t, err)
}

func TestParseUserIDFromJWT(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, testUser(), 30*time.Minute, testSignKey)
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseUserIDFromJWT("garbage")
	require.Error(t, err)
}
