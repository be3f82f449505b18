package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"aieduc/internal/domain"
	apperror "aieduc/internal/errors"
	"aieduc/internal/pkg/logger"
)

// UserRepository implementa a persistência da entidade User sobre a tabela "users".
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Código de erro do PostgreSQL para violação de chave única.
const pqUniqueViolation = "23505"

// Save insere um novo usuário no banco de dados.
// O índice único sobre lower(email) fecha a corrida "verificar-depois-inserir"
// de cadastros concorrentes: a segunda inserção do mesmo e-mail vira ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Save de usuário no repositório.", map[string]interface{}{"email": user.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	const insertSQL = `INSERT INTO users (id, name, email, password_hash, active, created_at)
                       VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctxTimeout,
		insertSQL,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Active,
		user.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			r.logger.Info("Tentativa de cadastro com e-mail já existente.", map[string]interface{}{"email": user.Email})
			return domain.User{}, apperror.NewConflictError("E-mail já cadastrado.")
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to insert user", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// ExistsByEmail verifica se já existe um usuário com o e-mail normalizado.
// É a checagem amigável pré-inserção; a garantia real de unicidade é o índice.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`

	var exists bool
	if err := r.DB.QueryRowContext(ctxTimeout, query, email).Scan(&exists); err != nil {
		r.logger.Error("Falha ao verificar existência de e-mail no DB.", err)
		return false, apperror.NewDBError("failed to check email existence", err)
	}

	return exists, nil
}

// FindActiveByEmail busca um usuário ativo pelo endereço de e-mail.
// Contas inativas são indistinguíveis de contas ausentes: ambas retornam NotFound.
func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (domain.User, error) {
	r.logger.Debug("Iniciando FindActiveByEmail no repositório.", map[string]interface{}{"email_attempt": email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, name, email, password_hash, active, created_at
                   FROM users
                   WHERE lower(email) = lower($1) AND active = true`

	row := r.DB.QueryRowContext(ctxTimeout, query, email)

	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("Usuário não encontrado ou inativo.", map[string]interface{}{"email": email})
			return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com e-mail '%s' não encontrado ou inativo.", email))
		}
		r.logger.Error("Falha ao buscar usuário por e-mail no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to find user by email", err)
	}

	return user, nil
}
