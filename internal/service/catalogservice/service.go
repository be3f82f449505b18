package catalogservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
)

// CourseRepository define o contrato que o Serviço de Catálogo espera da
// camada de Persistência.
type CourseRepository interface {
	FindActive(ctx context.Context) ([]domain.Course, error)
	FindAll(ctx context.Context) ([]domain.Course, error)
	Save(ctx context.Context, course domain.Course) (domain.Course, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// Authorizer é o contrato de autorização: verificação de administrador
// contra a lista fixa configurada (implementado pelo serviço de contas).
type Authorizer interface {
	IsAdmin(email string) bool
}

// Service implementa o catálogo de cursos. Toda operação administrativa
// recebe a identidade do chamador como argumento explícito e aplica o
// bloqueio de administrador aqui dentro — nenhum call site precisa lembrar
// de verificar antes de chamar.
type Service struct {
	repo   CourseRepository
	authz  Authorizer
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Catálogo.
func NewService(repo CourseRepository, authz Authorizer, logger logger.Logger) *Service {
	return &Service{repo: repo, authz: authz, logger: logger}
}

// ListActive retorna os cursos ativos em ordem de exibição.
//
// Se a consulta falhar ou não houver cursos ativos, substitui pela lista
// fixa embutida — o catálogo público nunca fica vazio em uma implantação
// nova ou degradada. O fallback é somente leitura e nunca é persistido.
func (s *Service) ListActive(ctx context.Context) []domain.Course {
	courses, err := s.repo.FindActive(ctx)
	if err != nil {
		s.logger.Warn("Falha ao carregar catálogo do banco. Usando lista embutida.", map[string]interface{}{"error": err.Error()})
		return domain.SeedCourses()
	}
	if len(courses) == 0 {
		return domain.SeedCourses()
	}
	return courses
}

// ListAll retorna todos os cursos (ativos e inativos) para o painel
// administrativo. Sem fallback: o administrador precisa ver o estado real,
// inclusive um catálogo vazio.
func (s *Service) ListAll(ctx context.Context, identity *domain.Identity) ([]domain.Course, error) {
	if err := s.requireAdmin(identity); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// Create cadastra um novo curso. Apenas o nome é obrigatório; os demais
// campos assumem vazio/zero. Nomes duplicados são permitidos.
func (s *Service) Create(ctx context.Context, identity *domain.Identity, course domain.Course) (domain.Course, error) {
	if err := s.requireAdmin(identity); err != nil {
		return domain.Course{}, err
	}

	if strings.TrimSpace(course.Nome) == "" {
		return domain.Course{}, apperror.NewValidationError("Informe pelo menos o nome do curso.")
	}

	created, err := s.repo.Save(ctx, course)
	if err != nil {
		s.logger.Error("Falha ao criar curso no repositório.", err)
		return domain.Course{}, err
	}

	s.logger.Info("Curso criado com sucesso.", map[string]interface{}{"course_id": created.ID, "nome": created.Nome, "admin": identity.Email})
	return created, nil
}

// SetActive ativa ou desativa um curso. Idempotente: repetir o estado alvo
// apenas reemite a escrita.
func (s *Service) SetActive(ctx context.Context, identity *domain.Identity, id string, active bool) error {
	if err := s.requireAdmin(identity); err != nil {
		return err
	}

	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do curso deve ser um UUID válido.")
	}

	return s.repo.SetActive(ctx, id, active)
}

// Delete exclui um curso definitivamente. Irreversível; inscrições passadas
// que referenciam o curso não são tocadas.
func (s *Service) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	if err := s.requireAdmin(identity); err != nil {
		return err
	}

	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do curso deve ser um UUID válido.")
	}

	return s.repo.Delete(ctx, id)
}

// requireAdmin aplica o bloqueio administrativo: identidade presente E
// pertencente à lista de administradores.
func (s *Service) requireAdmin(identity *domain.Identity) error {
	if identity == nil {
		return apperror.NewUnauthorizedError("Acesso restrito. Faça login com um usuário administrador.")
	}
	if !s.authz.IsAdmin(identity.Email) {
		s.logger.Warn("Operação administrativa negada.", map[string]interface{}{"email": identity.Email})
		return apperror.NewForbiddenError("Acesso restrito a usuários administradores.")
	}
	return nil
}
