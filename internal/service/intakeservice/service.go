package intakeservice

import (
	"context"
	"fmt"
	"time"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/pkg/mailer"
)

// IntakeRepository define o contrato que este Serviço espera da camada de
// Persistência: escrita de leads e de pré-inscrições.
type IntakeRepository interface {
	SaveLead(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	SaveInscricao(ctx context.Context, inscricao domain.Inscricao) (domain.Inscricao, error)
}

// Service implementa a captação de leads do formulário de contato e as
// pré-inscrições de interesse em cursos.
type Service struct {
	repo        IntakeRepository
	mail        mailer.Mailer
	adminEmails []string
	logger      logger.Logger
}

// NewService cria uma nova instância do Service, injetando as dependências.
func NewService(repo IntakeRepository, mail mailer.Mailer, adminEmails []string, logger logger.Logger) *Service {
	return &Service{
		repo:        repo,
		mail:        mail,
		adminEmails: adminEmails,
		logger:      logger,
	}
}

// SubmitLead persiste um lead do formulário de contato e dispara, em melhor
// esforço, a confirmação ao remetente e o resumo aos administradores.
// O tipo de interesse deve pertencer ao conjunto fixo; os demais campos são
// persistidos como chegaram.
func (s *Service) SubmitLead(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	if !domain.ValidTipoInteresse(lead.TipoInteresse) {
		return domain.Lead{}, apperror.NewValidationError("Tipo de interesse inválido.")
	}

	saved, err := s.repo.SaveLead(ctx, lead)
	if err != nil {
		return domain.Lead{}, err
	}

	s.sendLeadConfirmation(saved)
	s.sendLeadAdminDigest(saved)

	return saved, nil
}

// SubmitInscricao registra o interesse de um usuário autenticado em um curso,
// congelando os campos de exibição do curso no momento da submissão.
//
// Sem identidade → Unauthenticated (exibido ao usuário como "faça login
// primeiro"), e nada é gravado. Não há envio de e-mail neste fluxo.
func (s *Service) SubmitInscricao(ctx context.Context, identity *domain.Identity, course domain.Course) (domain.Inscricao, error) {
	if identity == nil {
		return domain.Inscricao{}, apperror.NewUnauthorizedError("Faça login para se pré-inscrever em um curso.")
	}

	inscricao := domain.Inscricao{
		UserID:            identity.ID,
		UserName:          identity.Name,
		UserEmail:         identity.Email,
		CursoNome:         course.Nome,
		CursoTag:          course.Tag,
		CursoPreco:        course.Preco,
		CursoProximaTurma: course.ProximaTurma,
	}

	saved, err := s.repo.SaveInscricao(ctx, inscricao)
	if err != nil {
		return domain.Inscricao{}, err
	}

	s.logger.Info("Pré-inscrição registrada.", map[string]interface{}{"user_id": identity.ID, "curso_nome": course.Nome})
	return saved, nil
}

// --- Notificações ---

func (s *Service) sendLeadConfirmation(lead domain.Lead) {
	body := fmt.Sprintf(
		"Olá, %s.\n\n"+
			"Recebemos sua mensagem na AI & Data Consulting.\n"+
			"Nossa equipe analisará sua demanda e retornará em breve.\n\n"+
			"Resumo do contato:\n"+
			"Tipo de interesse: %s\n"+
			"Empresa/Instituição: %s\n\n"+
			"Atenciosamente,\n"+
			"Equipe AI & Data Consulting",
		lead.Nome,
		lead.TipoInteresse,
		lead.Empresa,
	)
	s.mail.Send([]string{lead.Email}, "Recebemos sua mensagem na AI & Data Consulting", body)
}

func (s *Service) sendLeadAdminDigest(lead domain.Lead) {
	if len(s.adminEmails) == 0 {
		return
	}
	body := fmt.Sprintf(
		"Novo lead recebido pelo formulário de contato.\n\n"+
			"Nome: %s\n"+
			"E-mail: %s\n"+
			"Empresa: %s\n"+
			"Tipo de interesse: %s\n"+
			"Mensagem: %s\n"+
			"Data: %s (UTC)\n",
		lead.Nome,
		lead.Email,
		lead.Empresa,
		lead.TipoInteresse,
		lead.Mensagem,
		time.Now().UTC().Format(time.RFC3339),
	)
	s.mail.Send(s.adminEmails, "Novo lead no site AI & Data Consulting", body)
}
