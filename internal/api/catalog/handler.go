package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/pkg/middleware"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
// As operações administrativas recebem a identidade do chamador explicitamente;
// o bloqueio de administrador é aplicado dentro do serviço.
type CatalogService interface {
	ListActive(ctx context.Context) []domain.Course
	ListAll(ctx context.Context, identity *domain.Identity) ([]domain.Course, error)
	Create(ctx context.Context, identity *domain.Identity, course domain.Course) (domain.Course, error)
	SetActive(ctx context.Context, identity *domain.Identity, id string, active bool) error
	Delete(ctx context.Context, identity *domain.Identity, id string) error
}

// CourseRequest representa o payload de criação de curso no painel admin.
// Ativo é ponteiro para distinguir "não informado" (default true) de false.
type CourseRequest struct {
	Nome         string `json:"nome"`
	Categoria    string `json:"categoria"`
	Nivel        string `json:"nivel"`
	Descricao    string `json:"descricao"`
	CargaHoraria string `json:"carga_horaria"`
	Tag          string `json:"tag"`
	ImagemURL    string `json:"imagem_url"`
	Preco        string `json:"preco"`
	Destaque     bool   `json:"destaque"`
	ProximaTurma string `json:"proxima_turma"`
	Ordem        int    `json:"ordem"`
	Ativo        *bool  `json:"ativo"`
}

// SetActiveRequest representa o payload do PATCH de ativação/desativação.
type SetActiveRequest struct {
	Ativo bool `json:"ativo"`
}

// Handler agrupa todos os métodos de Handler do catálogo.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// ListActiveHandler lida com a requisição GET /v1/courses.
// @Summary Catálogo público de cursos
// @Description Lista os cursos ativos em ordem de exibição. Catálogo vazio ou banco indisponível retornam a lista embutida.
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Course
// @Router /courses [get]
func (h *Handler) ListActiveHandler(w http.ResponseWriter, r *http.Request) {
	courses := h.Service.ListActive(r.Context())
	h.handleServiceResponse(w, r, courses, nil, http.StatusOK)
}

// ListAllHandler lida com a requisição GET /v1/admin/courses.
// @Summary Lista completa de cursos (admin)
// @Description Lista todos os cursos, ativos e inativos, sem fallback.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Course
// @Failure 401 {object} domain.ErrorResponse "Sessão ausente ou inválida"
// @Failure 403 {object} domain.ErrorResponse "Usuário não é administrador"
// @Router /admin/courses [get]
func (h *Handler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.GetIdentityFromContext(ctx)

	courses, err := h.Service.ListAll(ctx, identity)
	h.handleServiceResponse(w, r, courses, err, http.StatusOK)
}

// CreateHandler lida com a requisição POST /v1/admin/courses.
// @Summary Cadastra um novo curso (admin)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body CourseRequest true "Dados do curso (apenas nome é obrigatório)"
// @Success 201 {object} domain.Course
// @Failure 400 {object} domain.ErrorResponse "Nome do curso ausente"
// @Failure 401 {object} domain.ErrorResponse "Sessão ausente ou inválida"
// @Failure 403 {object} domain.ErrorResponse "Usuário não é administrador"
// @Router /admin/courses [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.GetIdentityFromContext(ctx)

	var req CourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	// Curso ativo por padrão, como no formulário do painel.
	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	course := domain.Course{
		Nome:         req.Nome,
		Categoria:    req.Categoria,
		Nivel:        req.Nivel,
		Descricao:    req.Descricao,
		CargaHoraria: req.CargaHoraria,
		Tag:          req.Tag,
		ImagemURL:    req.ImagemURL,
		Preco:        req.Preco,
		Destaque:     req.Destaque,
		ProximaTurma: req.ProximaTurma,
		Ordem:        req.Ordem,
		Ativo:        ativo,
	}

	created, err := h.Service.Create(ctx, identity, course)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// SetActiveHandler lida com a requisição PATCH /v1/admin/courses/{id}/ativo.
// @Summary Ativa ou desativa um curso (admin)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do curso"
// @Param status body SetActiveRequest true "Estado alvo"
// @Success 204 "Status atualizado"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Curso não encontrado"
// @Router /admin/courses/{id}/ativo [patch]
func (h *Handler) SetActiveHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.GetIdentityFromContext(ctx)
	id := r.PathValue("id")

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusNoContent)
		return
	}

	err := h.Service.SetActive(ctx, identity, id, req.Ativo)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}

// DeleteHandler lida com a requisição DELETE /v1/admin/courses/{id}.
// @Summary Exclui um curso definitivamente (admin)
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do curso"
// @Success 204 "Curso excluído"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Curso não encontrado"
// @Router /admin/courses/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.GetIdentityFromContext(ctx)
	id := r.PathValue("id")

	err := h.Service.Delete(ctx, identity, id)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
