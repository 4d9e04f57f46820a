package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

func TestService_ValidateToken(t *testing.T) {
	authenticator, err := NewService(config.Auth{Secret: "segredo"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    func() string
		validate func(t *testing.T, claims *domain.Claims, err error)
	}{
		{
			name: "token válido",
			token: func() string {
				token, err := authenticator.GenerateToken("ops", 2, time.Hour)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ops", claims.Subject)
				assert.Equal(t, 2, claims.UserRoleID)
			},
		},
		{
			name: "token expirado",
			token: func() string {
				token, err := authenticator.GenerateToken("ops", 1, -time.Minute)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrExpiredToken)
				assert.True(t, IsAuthorizationError(err))
			},
		},
		{
			name: "assinatura com outro segredo",
			token: func() string {
				other, err := NewService(config.Auth{Secret: "outro"})
				require.NoError(t, err)
				token, err := other.GenerateToken("ops", 1, time.Hour)
				require.NoError(t, err)
				return token
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name: "algoritmo none é rejeitado",
			token: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserRoleID: 1})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
			validate: func(t *testing.T, claims *domain.Claims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := authenticator.ValidateToken(tt.token())
			tt.validate(t, claims, err)
		})
	}
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(config.Auth{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}
