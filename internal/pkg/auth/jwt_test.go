package auth

import (
	"testing"
	"time"

	"github.com/sixrdiamond/recruitment-portal/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "recruitment-portal",
	})
}

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:         1,
		EmployeeID: "EMP-001",
		FirstName:  "HR",
		LastName:   "Manager",
		Role:       "HR Manager",
		IsActive:   true,
	}
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	svc := testJWTService(15 * time.Minute)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testEmployee())
	require.NoError(t, err)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, int((15 * time.Minute).Seconds()), expiresIn)
	assert.Equal(t, int((24 * time.Hour).Seconds()), refreshExpiresIn)

	claims, err := svc.ValidateAndExtractClaims(access)
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", claims.EmployeeID)
	assert.Equal(t, "HR Manager", claims.Name)
	assert.Equal(t, "HR Manager", claims.Role)
	assert.Equal(t, "recruitment-portal", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	access, _, _, _, err := svc.GenerateTokenPair(testEmployee())
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	access, _, _, _, err := testJWTService(15 * time.Minute).GenerateTokenPair(testEmployee())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: 15 * time.Minute})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := testJWTService(15 * time.Minute)

	_, err := svc.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token is accepted as-is
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
