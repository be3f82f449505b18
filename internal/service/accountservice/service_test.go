package accountservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/hash"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/service/accountservice"
)

// MockUserRepository é uma implementação mock da interface UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindActiveByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

// MockTokenService é uma implementação mock da interface TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, name string, email string) (string, error) {
	args := m.Called(userID, name, email)
	return args.String(0), args.Error(1)
}

// MockMailer registra os envios de notificação (sempre melhor esforço).
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to []string, subject string, body string) {
	m.Called(to, subject, body)
}

func newService(repo *MockUserRepository, tokenSvc *MockTokenService, mail *MockMailer, admins []string) *accountservice.Service {
	return accountservice.NewService(repo, tokenSvc, mail, admins, logger.NewLogger("debug"))
}

// TestRegister_Success testa o cadastro completo: normalização, hash,
// persistência e as duas notificações.
func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, []string{"admin@x.com"})

	mockRepo.On("ExistsByEmail", mock.Anything, "ana@x.com").Return(false, nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		// E-mail normalizado, conta ativa e senha nunca em texto puro
		return u.Email == "ana@x.com" && u.Active && hash.Verify("p1", u.PasswordHash)
	})).Return(domain.User{ID: "id-1", Name: "Ana", Email: "ana@x.com", Active: true}, nil)
	mockMail.On("Send", []string{"ana@x.com"}, mock.Anything, mock.Anything).Return()
	mockMail.On("Send", []string{"admin@x.com"}, mock.Anything, mock.Anything).Return()

	user, err := svc.Register(context.Background(), domain.UserRegistration{
		Name:            "Ana",
		Email:           "ANA@X.COM ",
		Password:        "p1",
		PasswordConfirm: "p1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ana@x.com", user.Email)
	mockRepo.AssertExpectations(t)
	mockMail.AssertExpectations(t)
}

// TestRegister_Fail_DuplicateEmail garante que e-mail já cadastrado retorna
// ConflictError sem inserir nada.
func TestRegister_Fail_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	mockRepo.On("ExistsByEmail", mock.Anything, "ana@x.com").Return(true, nil)

	// Mesmo e-mail com caixa e espaços diferentes: a normalização iguala
	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Name:            "Ana2",
		Email:           "ANA@X.COM ",
		Password:        "p2",
		PasswordConfirm: "p2",
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockMail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

// TestRegister_Fail_PasswordMismatch testa a confirmação de senha.
func TestRegister_Fail_PasswordMismatch(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "p1",
		PasswordConfirm: "p2",
	})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

// TestRegister_Fail_MissingFields testa campos obrigatórios ausentes.
func TestRegister_Fail_MissingFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "ana@x.com"})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
}

// TestRegister_Success_NoAdminsConfigured garante que sem administradores
// configurados apenas o e-mail de boas-vindas é enviado.
func TestRegister_Success_NoAdminsConfigured(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	mockRepo.On("ExistsByEmail", mock.Anything, "ana@x.com").Return(false, nil)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(domain.User{ID: "id-1", Name: "Ana", Email: "ana@x.com"}, nil)
	mockMail.On("Send", []string{"ana@x.com"}, mock.Anything, mock.Anything).Return()

	_, err := svc.Register(context.Background(), domain.UserRegistration{
		Name:            "Ana",
		Email:           "ana@x.com",
		Password:        "p1",
		PasswordConfirm: "p1",
	})

	assert.NoError(t, err)
	mockMail.AssertNumberOfCalls(t, "Send", 1)
}

// TestLogin_Success testa o login com credenciais corretas.
func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	stored := hash.HashWithSalt("p1", "00112233445566778899aabbccddeeff")
	user := domain.User{ID: "id-1", Name: "Ana", Email: "ana@x.com", PasswordHash: stored, Active: true}

	mockRepo.On("FindActiveByEmail", mock.Anything, "ana@x.com").Return(user, nil)
	mockToken.On("GenerateToken", "id-1", "Ana", "ana@x.com").Return("jwt-token", nil)

	result, err := svc.Login(context.Background(), "ANA@X.COM ", "p1")

	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", result.Token)
	assert.Equal(t, domain.Identity{ID: "id-1", Name: "Ana", Email: "ana@x.com"}, result.User)
	mockRepo.AssertExpectations(t)
	mockToken.AssertExpectations(t)
}

// TestLogin_Fail_WrongPassword testa senha incorreta com e-mail correto.
func TestLogin_Fail_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	stored := hash.HashWithSalt("p1", "00112233445566778899aabbccddeeff")
	user := domain.User{ID: "id-1", Name: "Ana", Email: "ana@x.com", PasswordHash: stored, Active: true}

	mockRepo.On("FindActiveByEmail", mock.Anything, "ana@x.com").Return(user, nil)

	_, err := svc.Login(context.Background(), "ana@x.com", "errada")

	assert.Error(t, err)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	mockToken.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

// TestLogin_Fail_UnknownEmail testa e-mail desconhecido (ou conta inativa —
// o repositório trata os dois casos como NotFound).
func TestLogin_Fail_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, nil)

	mockRepo.On("FindActiveByEmail", mock.Anything, "x@x.com").
		Return(domain.User{}, apperror.NewNotFoundError("não encontrado"))

	_, err := svc.Login(context.Background(), "x@x.com", "p1")

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// TestIsAdmin verifica a lista de administradores (case-insensitive).
func TestIsAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockToken := new(MockTokenService)
	mockMail := new(MockMailer)

	svc := newService(mockRepo, mockToken, mockMail, []string{"admin@x.com"})

	assert.True(t, svc.IsAdmin("admin@x.com"))
	assert.True(t, svc.IsAdmin("ADMIN@X.COM"))
	assert.False(t, svc.IsAdmin("outro@x.com"))
	assert.False(t, svc.IsAdmin(""))
}
