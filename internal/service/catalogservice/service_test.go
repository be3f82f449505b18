package catalogservice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/service/catalogservice"
)

// MockCourseRepository é uma implementação mock da interface CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) FindActive(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepository) Save(ctx context.Context, course domain.Course) (domain.Course, error) {
	args := m.Called(ctx, course)
	return args.Get(0).(domain.Course), args.Error(1)
}

func (m *MockCourseRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// stubAuthorizer implementa Authorizer com uma lista fixa, como o serviço de contas.
type stubAuthorizer struct {
	admins map[string]bool
}

func (s stubAuthorizer) IsAdmin(email string) bool {
	return s.admins[strings.ToLower(email)]
}

var (
	adminIdentity = &domain.Identity{ID: "id-adm", Name: "Admin", Email: "admin@x.com"}
	userIdentity  = &domain.Identity{ID: "id-usr", Name: "Ana", Email: "ana@x.com"}
)

func newService(repo *MockCourseRepository) *catalogservice.Service {
	authz := stubAuthorizer{admins: map[string]bool{"admin@x.com": true}}
	return catalogservice.NewService(repo, authz, logger.NewLogger("debug"))
}

// TestListActive_Success testa a listagem pública com dados persistidos.
func TestListActive_Success(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	persisted := []domain.Course{
		{ID: uuid.NewString(), Nome: "Curso A", Ordem: 0, Ativo: true},
		{ID: uuid.NewString(), Nome: "Curso B", Ordem: 1, Ativo: true},
	}
	mockRepo.On("FindActive", mock.Anything).Return(persisted, nil)

	courses := svc.ListActive(context.Background())

	// A ordem vinda do repositório (ordem ASC) é preservada
	assert.Equal(t, persisted, courses)
	mockRepo.AssertExpectations(t)
}

// TestListActive_FallbackOnEmpty garante que catálogo vazio retorna a lista
// embutida, nunca vazia.
func TestListActive_FallbackOnEmpty(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindActive", mock.Anything).Return([]domain.Course{}, nil)

	courses := svc.ListActive(context.Background())

	assert.NotEmpty(t, courses)
	assert.Equal(t, domain.SeedCourses(), courses)
}

// TestListActive_FallbackOnError garante que falha de banco também cai na
// lista embutida em vez de propagar erro ao catálogo público.
func TestListActive_FallbackOnError(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindActive", mock.Anything).Return([]domain.Course{}, errors.New("database connection lost"))

	courses := svc.ListActive(context.Background())

	assert.NotEmpty(t, courses)
	assert.Equal(t, domain.SeedCourses(), courses)
}

// TestListAll_Success_EmptyNoFallback garante que o painel admin vê o estado
// real, inclusive um catálogo vazio (sem fallback).
func TestListAll_Success_EmptyNoFallback(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	mockRepo.On("FindAll", mock.Anything).Return([]domain.Course{}, nil)

	courses, err := svc.ListAll(context.Background(), adminIdentity)

	assert.NoError(t, err)
	assert.Empty(t, courses)
	mockRepo.AssertExpectations(t)
}

// TestListAll_Fail_Anonymous garante que sem identidade a listagem admin é negada.
func TestListAll_Fail_Anonymous(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	_, err := svc.ListAll(context.Background(), nil)

	assert.Error(t, err)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	mockRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

// TestListAll_Fail_NonAdmin garante que usuário autenticado fora da lista é negado.
func TestListAll_Fail_NonAdmin(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	_, err := svc.ListAll(context.Background(), userIdentity)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ForbiddenError{}, err)
	mockRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

// TestCreate_Success testa a criação com apenas o nome preenchido.
func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	input := domain.Course{Nome: "X", Ativo: true}
	created := input
	created.ID = uuid.NewString()

	mockRepo.On("Save", mock.Anything, input).Return(created, nil)

	result, err := svc.Create(context.Background(), adminIdentity, input)

	assert.NoError(t, err)
	assert.Equal(t, "X", result.Nome)
	assert.True(t, result.Ativo)
	assert.Equal(t, 0, result.Ordem)
	mockRepo.AssertExpectations(t)
}

// TestCreate_Fail_EmptyNome garante que curso sem nome é rejeitado sem inserção.
func TestCreate_Fail_EmptyNome(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	_, err := svc.Create(context.Background(), adminIdentity, domain.Course{Nome: "  "})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// TestCreate_Fail_NonAdmin garante o bloqueio dentro do serviço, antes de
// qualquer validação ou escrita.
func TestCreate_Fail_NonAdmin(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	_, err := svc.Create(context.Background(), userIdentity, domain.Course{Nome: "X"})

	assert.Error(t, err)
	assert.IsType(t, &apperror.ForbiddenError{}, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// TestSetActive_Success testa a desativação de um curso.
func TestSetActive_Success(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	id := uuid.NewString()
	mockRepo.On("SetActive", mock.Anything, id, false).Return(nil)

	err := svc.SetActive(context.Background(), adminIdentity, id, false)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestSetActive_Fail_InvalidID garante validação de formato do ID.
func TestSetActive_Fail_InvalidID(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	err := svc.SetActive(context.Background(), adminIdentity, "nao-e-uuid", true)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

// TestDelete_Success testa a exclusão definitiva.
func TestDelete_Success(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	id := uuid.NewString()
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.Delete(context.Background(), adminIdentity, id)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// TestDelete_Fail_Anonymous garante que a exclusão exige sessão.
func TestDelete_Fail_Anonymous(t *testing.T) {
	mockRepo := new(MockCourseRepository)
	svc := newService(mockRepo)

	err := svc.Delete(context.Background(), nil, uuid.NewString())

	assert.Error(t, err)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
