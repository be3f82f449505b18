package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// O hash armazenado tem sempre o formato "salt$digest", onde salt são 16 bytes
// aleatórios em hexadecimal e digest é o SHA-256 de salt+senha, também em
// hexadecimal. A senha nunca é armazenada nem logada em texto puro.

const saltBytes = 16

// Hash gera um salt aleatório e retorna o hash da senha no formato "salt$digest".
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("falha ao gerar salt aleatório: %w", err)
	}
	return HashWithSalt(password, hex.EncodeToString(salt)), nil
}

// HashWithSalt calcula o hash determinístico da senha com um salt conhecido.
// Útil em testes e na verificação.
func HashWithSalt(password, salt string) string {
	digest := sha256.Sum256([]byte(salt + password))
	return salt + "$" + hex.EncodeToString(digest[:])
}

// Verify compara a senha informada com o hash armazenado.
// Hashes malformados (zero ou mais de um separador '$') retornam false,
// nunca erro. A comparação é em tempo constante.
func Verify(password, storedHash string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 2 {
		return false
	}
	salt, digest := parts[0], parts[1]

	check := sha256.Sum256([]byte(salt + password))
	checkHex := hex.EncodeToString(check[:])

	return subtle.ConstantTimeCompare([]byte(checkHex), []byte(digest)) == 1
}
