package intakerepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
)

// IntakeRepository persiste leads do formulário de contato (tabela "leads")
// e pré-inscrições em cursos (tabela "inscricoes"). Ambas são write-only
// para o core: nenhuma operação de leitura é exposta.
type IntakeRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewIntakeRepository cria uma nova instância do IntakeRepository, injetando o DB.
func NewIntakeRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *IntakeRepository {
	return &IntakeRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// SaveLead insere um lead do formulário de contato.
func (r *IntakeRepository) SaveLead(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	lead.ID = uuid.NewString()
	lead.CreatedAt = time.Now().UTC()

	const insertSQL = `INSERT INTO leads (id, nome, email, empresa, tipo_interesse, mensagem, created_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctxTimeout,
		insertSQL,
		lead.ID,
		lead.Nome,
		lead.Email,
		lead.Empresa,
		lead.TipoInteresse,
		lead.Mensagem,
		lead.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Falha ao inserir lead no DB.", err)
		return domain.Lead{}, apperror.NewDBError("failed to insert lead", err)
	}

	r.logger.Info("Lead salvo com sucesso no repositório.", map[string]interface{}{"lead_id": lead.ID, "tipo_interesse": lead.TipoInteresse})
	return lead, nil
}

// SaveInscricao insere uma pré-inscrição com o snapshot desnormalizado do curso.
func (r *IntakeRepository) SaveInscricao(ctx context.Context, inscricao domain.Inscricao) (domain.Inscricao, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	inscricao.ID = uuid.NewString()
	inscricao.CreatedAt = time.Now().UTC()

	const insertSQL = `INSERT INTO inscricoes (id, user_id, user_name, user_email, curso_nome,
                                               curso_tag, curso_preco, curso_proxima_turma, created_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(
		ctxTimeout,
		insertSQL,
		inscricao.ID,
		inscricao.UserID,
		inscricao.UserName,
		inscricao.UserEmail,
		inscricao.CursoNome,
		inscricao.CursoTag,
		inscricao.CursoPreco,
		inscricao.CursoProximaTurma,
		inscricao.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Falha ao inserir inscrição no DB.", err)
		return domain.Inscricao{}, apperror.NewDBError("failed to insert inscricao", err)
	}

	r.logger.Info("Inscrição salva com sucesso no repositório.", map[string]interface{}{"inscricao_id": inscricao.ID, "curso_nome": inscricao.CursoNome})
	return inscricao, nil
}
