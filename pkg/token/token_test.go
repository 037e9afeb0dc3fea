package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendapro/crm-api/pkg/token"
)

func TestGenerateAndParse(t *testing.T) {
	signed, err := token.Generate("segredo", "user-123", "maria@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := token.Parse("segredo", signed)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := token.Generate("segredo", "user-123", "maria@example.com")
	assert.NoError(t, err)

	claims, err := token.Parse("outro-segredo", signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGenerateEmptySecret(t *testing.T) {
	signed, err := token.Generate("", "user-123", "maria@example.com")
	assert.Error(t, err)
	assert.Empty(t, signed)
}
