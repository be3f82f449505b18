package intake

import (
	"context"
	"encoding/json"
	"net/http"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/pkg/middleware"
)

// IntakeService define o contrato que o Handler espera da camada de Serviço.
type IntakeService interface {
	SubmitLead(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	SubmitInscricao(ctx context.Context, identity *domain.Identity, course domain.Course) (domain.Inscricao, error)
}

// LeadRequest representa o payload do formulário de contato.
type LeadRequest struct {
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Empresa       string `json:"empresa"`
	TipoInteresse string `json:"tipo_interesse"`
	Mensagem      string `json:"mensagem"`
}

// InscricaoRequest representa o payload de pré-inscrição: os campos de
// exibição do curso no momento da submissão (snapshot desnormalizado).
type InscricaoRequest struct {
	CursoNome         string `json:"curso_nome"`
	CursoTag          string `json:"curso_tag"`
	CursoPreco        string `json:"curso_preco"`
	CursoProximaTurma string `json:"curso_proxima_turma"`
}

// Handler agrupa os métodos de Handler de captação.
type Handler struct {
	Service IntakeService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc IntakeService, log logger.Logger) *Handler {
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
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de captação:", err)
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

// SubmitLeadHandler lida com a requisição POST /v1/leads.
// @Summary Envia uma mensagem pelo formulário de contato
// @Description Persiste o lead e dispara confirmação ao remetente e resumo aos administradores (melhor esforço).
// @Tags intake
// @Accept json
// @Produce json
// @Param lead body LeadRequest true "Dados do contato"
// @Success 201 {object} map[string]string "Mensagem enviada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Tipo de interesse inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /leads [post]
func (h *Handler) SubmitLeadHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	lead := domain.Lead{
		Nome:          req.Nome,
		Email:         req.Email,
		Empresa:       req.Empresa,
		TipoInteresse: req.TipoInteresse,
		Mensagem:      req.Mensagem,
	}

	if _, err := h.Service.SubmitLead(ctx, lead); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	response := map[string]string{"message": "Mensagem enviada com sucesso. Em breve entraremos em contato."}
	h.handleServiceResponse(w, r, response, nil, http.StatusCreated)
}

// SubmitInscricaoHandler lida com a requisição POST /v1/enrollments.
// @Summary Pré-inscrição de interesse em um curso
// @Description Exige sessão autenticada; grava um snapshot dos campos do curso no momento da submissão.
// @Tags intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param inscricao body InscricaoRequest true "Campos do curso de interesse"
// @Success 201 {object} domain.Inscricao
// @Failure 401 {object} domain.ErrorResponse "Faça login para se pré-inscrever"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /enrollments [post]
func (h *Handler) SubmitInscricaoHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := middleware.GetIdentityFromContext(ctx)

	var req InscricaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	course := domain.Course{
		Nome:         req.CursoNome,
		Tag:          req.CursoTag,
		Preco:        req.CursoPreco,
		ProximaTurma: req.CursoProximaTurma,
	}

	saved, err := h.Service.SubmitInscricao(ctx, identity, course)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	h.handleServiceResponse(w, r, saved, nil, http.StatusCreated)
}
