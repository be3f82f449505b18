package courserepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/cache"
	"aieduc/internal/pkg/logger"
)

// CourseRepository implementa a persistência do catálogo de cursos sobre a
// tabela "courses", com cache-aside do catálogo público no Redis.
type CourseRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCourseRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewCourseRepository(db *sql.DB, cacheClient cache.Client, dbTimeout time.Duration, logger logger.Logger) *CourseRepository {
	return &CourseRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Chave de cache da listagem pública de cursos ativos.
const activeCoursesCacheKey = "courses:active"

const courseColumns = `id, nome, categoria, nivel, descricao, carga_horaria, tag,
                       imagem_url, preco, destaque, proxima_turma, ordem, ativo, created_at`

// FindActive retorna os cursos com ativo = true, ordenados por ordem ascendente,
// utilizando a estratégia Cache-Aside para a leitura mais frequente do site.
func (r *CourseRepository) FindActive(ctx context.Context) ([]domain.Course, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// --- 1. Cache-Aside (READ) ---
	cachedData, err := r.Cache.Get(ctxTimeout, activeCoursesCacheKey)
	if err == nil {
		var courses []domain.Course
		if json.Unmarshal([]byte(cachedData), &courses) == nil {
			return courses, nil
		}
		// Desserialização falhou: segue para o DB
	} else if err != cache.ErrCacheMiss {
		// Erro real de cache (e.g., conexão perdida): logamos e seguimos para o DB.
		r.logger.Warn("Falha ao ler catálogo do cache.", map[string]interface{}{"error": err.Error()})
	}

	// --- 2. Busca no Banco de Dados ---
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE ativo = true ORDER BY ordem ASC`, courseColumns)

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		return nil, apperror.NewDBError("failed to list active courses", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		return nil, err
	}

	// --- 3. Cache-Aside (WRITE) ---
	if coursesJSON, marshalErr := json.Marshal(courses); marshalErr == nil {
		if setErr := r.Cache.Set(ctxTimeout, activeCoursesCacheKey, coursesJSON, 5*time.Minute); setErr != nil {
			r.logger.Warn("Falha ao popular cache do catálogo.", map[string]interface{}{"error": setErr.Error()})
		}
	}

	return courses, nil
}

// FindAll retorna todos os cursos (ativos e inativos), ordenados por ordem
// ascendente. Sem cache: o administrador precisa ver o estado real persistido.
func (r *CourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY ordem ASC`, courseColumns)

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		return nil, apperror.NewDBError("failed to list all courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Save insere um novo curso no banco de dados e invalida o cache do catálogo.
func (r *CourseRepository) Save(ctx context.Context, course domain.Course) (domain.Course, error) {
	r.logger.Debug("Iniciando Save de curso no repositório.", map[string]interface{}{"nome": course.Nome})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	course.ID = uuid.NewString()
	course.CreatedAt = time.Now().UTC()

	const insertSQL = `INSERT INTO courses (id, nome, categoria, nivel, descricao, carga_horaria, tag,
                                            imagem_url, preco, destaque, proxima_turma, ordem, ativo, created_at)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.DB.ExecContext(
		ctxTimeout,
		insertSQL,
		course.ID,
		course.Nome,
		course.Categoria,
		course.Nivel,
		course.Descricao,
		course.CargaHoraria,
		course.Tag,
		course.ImagemURL,
		course.Preco,
		course.Destaque,
		course.ProximaTurma,
		course.Ordem,
		course.Ativo,
		course.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Falha ao inserir curso no DB.", err)
		return domain.Course{}, apperror.NewDBError("failed to insert course", err)
	}

	r.invalidateCache(ctxTimeout)

	r.logger.Info("Curso salvo com sucesso no repositório.", map[string]interface{}{"course_id": course.ID, "nome": course.Nome})
	return course, nil
}

// SetActive altera a flag ativo de um curso. A escrita é idempotente:
// repetir o estado alvo apenas emite um UPDATE redundante.
func (r *CourseRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const updateSQL = `UPDATE courses SET ativo = $2 WHERE id = $1`

	result, err := r.DB.ExecContext(ctxTimeout, updateSQL, id, active)
	if err != nil {
		r.logger.Error("Falha ao atualizar status do curso no DB.", err)
		return apperror.NewDBError("failed to update course status", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Curso com ID %s não existe na base de dados.", id))
	}

	r.invalidateCache(ctxTimeout)

	r.logger.Info("Status do curso atualizado.", map[string]interface{}{"course_id": id, "ativo": active})
	return nil
}

// Delete remove um curso definitivamente (hard delete). Inscrições que
// referenciam o curso permanecem intactas — são snapshots desnormalizados.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const deleteSQL = `DELETE FROM courses WHERE id = $1`

	result, err := r.DB.ExecContext(ctxTimeout, deleteSQL, id)
	if err != nil {
		r.logger.Error("Falha ao excluir curso no DB.", err)
		return apperror.NewDBError("failed to delete course", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Curso com ID %s não existe na base de dados.", id))
	}

	r.invalidateCache(ctxTimeout)

	r.logger.Info("Curso excluído.", map[string]interface{}{"course_id": id})
	return nil
}

// invalidateCache descarta a listagem pública em cache após qualquer mutação.
func (r *CourseRepository) invalidateCache(ctx context.Context) {
	if err := r.Cache.Delete(ctx, activeCoursesCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar cache do catálogo.", map[string]interface{}{"error": err.Error()})
	}
}

// scanCourses mapeia o resultado da query para a lista de entidades.
func scanCourses(rows *sql.Rows) ([]domain.Course, error) {
	courses := []domain.Course{}

	for rows.Next() {
		var c domain.Course
		err := rows.Scan(
			&c.ID,
			&c.Nome,
			&c.Categoria,
			&c.Nivel,
			&c.Descricao,
			&c.CargaHoraria,
			&c.Tag,
			&c.ImagemURL,
			&c.Preco,
			&c.Destaque,
			&c.ProximaTurma,
			&c.Ordem,
			&c.Ativo,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan course row", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate course rows", err)
	}

	return courses, nil
}
