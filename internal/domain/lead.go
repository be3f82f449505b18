package domain

import "time"

// Lead representa uma mensagem do formulário de contato: interesse geral,
// não vinculado a um curso específico. É uma trilha de auditoria write-only —
// o core nunca lê leads de volta.
type Lead struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Email         string    `json:"email"`
	Empresa       string    `json:"empresa"`
	TipoInteresse string    `json:"tipo_interesse"`
	Mensagem      string    `json:"mensagem"`
	CreatedAt     time.Time `json:"created_at"`
}

// TiposInteresse é o conjunto fixo de categorias de interesse aceitas no
// formulário de contato.
var TiposInteresse = []string{
	"Consultoria em IA / ML",
	"Projetos com Visão Computacional",
	"Conjuntos de dados e coleta",
	"Cursos e trilhas de formação",
	"Palestras e workshops",
	"Outro",
}

// ValidTipoInteresse verifica se o valor pertence ao conjunto fixo.
func ValidTipoInteresse(tipo string) bool {
	for _, t := range TiposInteresse {
		if t == tipo {
			return true
		}
	}
	return false
}

// Inscricao representa uma pré-inscrição de interesse em um curso, feita por
// um usuário autenticado. Os campos do curso são desnormalizados no momento
// da submissão: uma edição posterior do curso não altera inscrições passadas,
// pois a inscrição é um registro pontual de interesse.
type Inscricao struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	UserName          string    `json:"user_name"`
	UserEmail         string    `json:"user_email"`
	CursoNome         string    `json:"curso_nome"`
	CursoTag          string    `json:"curso_tag"`
	CursoPreco        string    `json:"curso_preco"`
	CursoProximaTurma string    `json:"curso_proxima_turma"`
	CreatedAt         time.Time `json:"created_at"`
}
