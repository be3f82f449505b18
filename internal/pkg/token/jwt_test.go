package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aieduc/internal/pkg/token"
)

// TestGenerateAndValidate verifica que o token carrega a projeção de identidade.
func TestGenerateAndValidate(t *testing.T) {
	svc := token.NewService("chave-de-teste", time.Hour)

	tokenString, err := svc.GenerateToken("id-1", "Ana", "ana@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "id-1", claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@x.com", claims.Email)
}

// TestValidate_Fail_WrongKey garante que tokens assinados com outra chave são rejeitados.
func TestValidate_Fail_WrongKey(t *testing.T) {
	svc := token.NewService("chave-a", time.Hour)
	other := token.NewService("chave-b", time.Hour)

	tokenString, err := svc.GenerateToken("id-1", "Ana", "ana@x.com")
	assert.NoError(t, err)

	_, err = other.ValidateToken(tokenString)
	assert.Error(t, err)
}

// TestValidate_Fail_Expired garante que tokens expirados são rejeitados.
func TestValidate_Fail_Expired(t *testing.T) {
	svc := token.NewService("chave-de-teste", -time.Minute)

	tokenString, err := svc.GenerateToken("id-1", "Ana", "ana@x.com")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}
