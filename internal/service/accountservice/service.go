package accountservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/hash"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/pkg/mailer"
)

// UserRepository define o contrato que este Serviço espera da camada de Persistência.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindActiveByEmail(ctx context.Context, email string) (domain.User, error)
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID string, name string, email string) (string, error)
}

// Service implementa o diretório de contas: cadastro, login e a verificação
// de administrador contra a lista fixa de e-mails autorizados.
type Service struct {
	repo        UserRepository
	tokenSvc    TokenService
	mail        mailer.Mailer
	adminEmails []string
	logger      logger.Logger
}

// NewService cria uma nova instância do Service, injetando as dependências.
// adminEmails deve vir já normalizado (minúsculas, sem espaços) da configuração.
func NewService(repo UserRepository, tokenSvc TokenService, mail mailer.Mailer, adminEmails []string, logger logger.Logger) *Service {
	return &Service{
		repo:        repo,
		tokenSvc:    tokenSvc,
		mail:        mail,
		adminEmails: adminEmails,
		logger:      logger,
	}
}

// LoginResult é o retorno do login: a projeção de identidade e o token de sessão.
type LoginResult struct {
	User  domain.Identity `json:"user"`
	Token string          `json:"token"`
}

// Register registra um novo usuário no sistema.
//
// Após a persistência, dispara o e-mail de boas-vindas ao usuário e a
// notificação aos administradores — ambos melhor esforço e independentes
// entre si: o cadastro já foi efetivado e não é desfeito por falha de envio.
func (s *Service) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	// 1. Validação Básica
	if registration.Name == "" || registration.Email == "" || registration.Password == "" {
		return domain.User{}, apperror.NewValidationError("Preencha todos os campos.")
	}
	if registration.Password != registration.PasswordConfirm {
		return domain.User{}, apperror.NewValidationError("As senhas não coincidem.")
	}

	// 2. Normalização e checagem de duplicidade
	email := domain.NormalizeEmail(registration.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if exists {
		return domain.User{}, apperror.NewConflictError("E-mail já cadastrado.")
	}

	// 3. Hashing da Senha e persistência
	pwdHash, err := hash.Hash(registration.Password)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	newUser := domain.User{
		Name:         registration.Name,
		Email:        email,
		PasswordHash: pwdHash,
		Active:       true,
	}

	user, err := s.repo.Save(ctx, newUser)
	if err != nil {
		// O repositório já traduz a violação do índice único (corrida de
		// cadastros concorrentes) para ConflictError.
		return domain.User{}, err
	}

	// 4. Notificações (melhor esforço, após o commit)
	s.sendWelcomeEmail(user)
	s.sendAdminNewUserEmail(user)

	return user, nil
}

// Login autentica um usuário ativo e emite o token de sessão.
//
// Conta inexistente ou inativa → NotFound; senha incorreta → Unauthorized.
// As duas falhas têm mensagens distintas, como no site.
func (s *Service) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, apperror.NewValidationError("Informe e-mail e senha.")
	}

	user, err := s.repo.FindActiveByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		// NotFound do repositório já cobre conta ausente e conta inativa.
		return LoginResult{}, err
	}

	if !hash.Verify(password, user.PasswordHash) {
		s.logger.Info("Tentativa de login com senha incorreta.", map[string]interface{}{"email": user.Email})
		return LoginResult{}, apperror.NewUnauthorizedError("Senha incorreta.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return LoginResult{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID})
	return LoginResult{User: user.Identity(), Token: tokenString}, nil
}

// IsAdmin verifica se o e-mail pertence à lista fixa de administradores
// (comparação case-insensitive). É o único mecanismo de autorização do sistema.
func (s *Service) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	email = strings.ToLower(email)
	for _, admin := range s.adminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

// --- Notificações ---

func (s *Service) sendWelcomeEmail(user domain.User) {
	body := fmt.Sprintf(
		"Olá, %s.\n\n"+
			"Seu cadastro na plataforma AI & Data Consulting foi concluído com sucesso.\n"+
			"Em breve você receberá novidades sobre cursos, trilhas e conteúdos exclusivos.\n\n"+
			"Atenciosamente,\n"+
			"Equipe AI & Data Consulting",
		user.Name,
	)
	s.mail.Send([]string{user.Email}, "Bem-vindo(a) à plataforma AI & Data Consulting", body)
}

func (s *Service) sendAdminNewUserEmail(user domain.User) {
	if len(s.adminEmails) == 0 {
		return
	}
	body := fmt.Sprintf(
		"Novo cadastro de usuário no site AI & Data Consulting.\n\n"+
			"Nome: %s\n"+
			"E-mail: %s\n"+
			"Data: %s (UTC)\n",
		user.Name,
		user.Email,
		time.Now().UTC().Format(time.RFC3339),
	)
	s.mail.Send(s.adminEmails, "Novo cadastro de usuário no site", body)
}
