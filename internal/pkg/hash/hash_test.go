package hash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"aieduc/internal/pkg/hash"
)

// TestHash_Format verifica o formato "salt$digest" do hash gerado.
func TestHash_Format(t *testing.T) {
	stored, err := hash.Hash("senha-secreta")

	assert.NoError(t, err)
	parts := strings.Split(stored, "$")
	assert.Len(t, parts, 2)
	assert.Len(t, parts[0], 32) // 16 bytes de salt em hexadecimal
	assert.Len(t, parts[1], 64) // SHA-256 em hexadecimal
}

// TestHashWithSalt_Deterministic verifica que o hash é determinístico dado o mesmo salt.
func TestHashWithSalt_Deterministic(t *testing.T) {
	a := hash.HashWithSalt("p1", "00112233445566778899aabbccddeeff")
	b := hash.HashWithSalt("p1", "00112233445566778899aabbccddeeff")

	assert.Equal(t, a, b)
}

// TestVerify_Success verifica a senha correta contra o hash armazenado.
func TestVerify_Success(t *testing.T) {
	stored, err := hash.Hash("p1")
	assert.NoError(t, err)

	assert.True(t, hash.Verify("p1", stored))
}

// TestVerify_Fail_WrongPassword garante ausência de falsos positivos.
func TestVerify_Fail_WrongPassword(t *testing.T) {
	stored := hash.HashWithSalt("p1", "00112233445566778899aabbccddeeff")

	assert.False(t, hash.Verify("p2", stored))
	assert.False(t, hash.Verify("", stored))
}

// TestVerify_MalformedStoredHash garante que hashes malformados nunca verificam
// nem causam pânico.
func TestVerify_MalformedStoredHash(t *testing.T) {
	cases := []string{
		"",
		"sem-separador",
		"a$b$c",
		"$",
		"salt$",
	}

	for _, stored := range cases {
		assert.False(t, hash.Verify("qualquer", stored), "hash armazenado: %q", stored)
	}
}

// TestHash_SaltsDiffer verifica que dois hashes da mesma senha usam salts distintos.
func TestHash_SaltsDiffer(t *testing.T) {
	a, err := hash.Hash("p1")
	assert.NoError(t, err)
	b, err := hash.Hash("p1")
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)

	// Ambos continuam verificando
	assert.True(t, hash.Verify("p1", a))
	assert.True(t, hash.Verify("p1", b))
}
