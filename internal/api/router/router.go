package router

import (
	"encoding/json"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"aieduc/internal/api/account"
	"aieduc/internal/api/catalog"
	"aieduc/internal/api/intake"
	"aieduc/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
//
// As rotas administrativas vivem sob o prefixo dedicado /v1/admin e sempre
// exigem sessão autenticada; a verificação de administrador em si acontece
// dentro do serviço de catálogo. As rotas públicas permanecem acessíveis
// independentemente da sessão.
func NewRouter(
	accountHandler *account.Handler,
	catalogHandler *catalog.Handler,
	intakeHandler *intake.Handler,
	tokenSvc middleware.TokenService,
	heroImage string,
) http.Handler {

	mux := http.NewServeMux()

	authRequired := middleware.NewAuthMiddleware(tokenSvc)

	// --- 1. Health Check e metadados do site ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.HandleFunc("GET /v1/site", SiteHandler(heroImage))

	// --- 2. Contas ---
	mux.HandleFunc("POST /v1/register", accountHandler.RegisterHandler)
	mux.HandleFunc("POST /v1/login", accountHandler.LoginHandler)

	// --- 3. Catálogo público ---
	mux.HandleFunc("GET /v1/courses", catalogHandler.ListActiveHandler)

	// --- 4. Captação ---
	mux.HandleFunc("POST /v1/leads", intakeHandler.SubmitLeadHandler)
	mux.HandleFunc("POST /v1/enrollments", authRequired(intakeHandler.SubmitInscricaoHandler))

	// --- 5. Painel administrativo de cursos ---
	mux.HandleFunc("GET /v1/admin/courses", authRequired(catalogHandler.ListAllHandler))
	mux.HandleFunc("POST /v1/admin/courses", authRequired(catalogHandler.CreateHandler))
	mux.HandleFunc("PATCH /v1/admin/courses/{id}/ativo", authRequired(catalogHandler.SetActiveHandler))
	mux.HandleFunc("DELETE /v1/admin/courses/{id}", authRequired(catalogHandler.DeleteHandler))

	// --- 6. Documentação da API ---
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// SiteHandler expõe os metadados públicos do site (imagem principal).
func SiteHandler(heroImage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"hero_image": heroImage})
	}
}
