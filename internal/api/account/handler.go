package account

import (
	"context"
	"encoding/json"
	"net/http"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/service/accountservice"
)

// AccountService define o contrato que o Handler espera da camada de Serviço.
type AccountService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, email string, password string) (accountservice.LoginResult, error)
}

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse é o corpo de sucesso do cadastro.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}

// Handler agrupa todos os métodos de Handler de contas.
type Handler struct {
	Service AccountService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AccountService, log logger.Logger) *Handler {
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

	// Log apenas de erros graves
	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de contas:", err)
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

// RegisterHandler lida com a requisição POST /v1/register.
// @Summary Registra um novo usuário
// @Description Cria um novo usuário, hasheia a senha e dispara as notificações de boas-vindas.
// @Tags accounts
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Dados de cadastro (nome, e-mail, senha e confirmação)"
// @Success 201 {object} RegisterResponse "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou senhas que não coincidem"
// @Failure 409 {object} domain.ErrorResponse "E-mail já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reg domain.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	newUser, err := h.Service.Register(ctx, reg)
	if err != nil {
		// Ex: ConflictError (e-mail duplicado) -> 409
		// Ex: ValidationError -> 400
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	// O PasswordHash nunca aparece na resposta: a struct domain.User usa a tag `json:"-"`.
	response := RegisterResponse{
		Message: "Cadastro realizado com sucesso. Você já pode fazer login.",
		User:    newUser,
	}
	h.handleServiceResponse(w, r, response, nil, http.StatusCreated)
}

// LoginHandler lida com a requisição POST /v1/login.
// @Summary Autentica um usuário e retorna a identidade + JWT
// @Description Recebe e-mail/senha, verifica a validade e emite o token de sessão.
// @Tags accounts
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credenciais do usuário (e-mail e senha)"
// @Success 200 {object} accountservice.LoginResult "Identidade e token de sessão"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Senha incorreta"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado ou inativo"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	result, err := h.Service.Login(ctx, loginReq.Email, loginReq.Password)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, result, nil, http.StatusOK)
}
