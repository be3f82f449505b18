package middleware

import (
	"context"
	"net/http"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote. Usamos um tipo
// próprio para garantir que a chave seja única e não conflite com chaves
// string de outros pacotes.
type ContextKey int

const (
	identityKey ContextKey = iota
)

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria o middleware que valida o JWT da sessão e anexa a
// projeção de identidade (id, nome, e-mail) ao contexto da requisição.
// A verificação de administrador NÃO acontece aqui: ela é responsabilidade
// do serviço, que recebe a identidade como argumento explícito.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {

			// 1. Extrair o Token do Header Authorization: Bearer <token>
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || len(authHeader) < 7 || authHeader[:7] != "Bearer " {
				http.Error(w, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado.").Error(), http.StatusUnauthorized)
				return
			}

			tokenString := authHeader[7:]

			// 2. Validar o Token
			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, apperror.NewUnauthorizedError("Token inválido ou expirado.").Error(), http.StatusUnauthorized)
				return
			}

			// 3. Anexar a identidade ao contexto
			identity := domain.Identity{
				ID:    claims.UserID,
				Name:  claims.Name,
				Email: claims.Email,
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// GetIdentityFromContext extrai a identidade da sessão no handler.
// Retorna nil quando a requisição é anônima.
func GetIdentityFromContext(ctx context.Context) *domain.Identity {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok {
		return nil
	}
	return &identity
}
