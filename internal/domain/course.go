package domain

import "time"

// Course representa um curso do catálogo. Os nomes de campo seguem o
// vocabulário do site (conteúdo em português).
type Course struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Categoria    string    `json:"categoria"`
	Nivel        string    `json:"nivel"`
	Descricao    string    `json:"descricao"`
	CargaHoraria string    `json:"carga_horaria"`
	Tag          string    `json:"tag"`
	ImagemURL    string    `json:"imagem_url"`
	Preco        string    `json:"preco"`
	Destaque     bool      `json:"destaque"`
	ProximaTurma string    `json:"proxima_turma"`
	Ordem        int       `json:"ordem"`
	Ativo        bool      `json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
}

// SeedCourses retorna a lista fixa de cursos usada como fallback quando o
// catálogo persistido está vazio ou inacessível — o catálogo público nunca
// fica em branco em uma implantação nova ou degradada.
//
// A lista é somente leitura: nunca é gravada de volta no banco.
func SeedCourses() []Course {
	return []Course{
		{
			Nome:         "Formação em Python para Programação",
			Categoria:    "Programação",
			Nivel:        "Iniciante a Intermediário",
			Descricao:    "Curso focado em resolução de problemas reais, boas práticas e uso de bibliotecas modernas.",
			CargaHoraria: "24h",
			Tag:          "Python",
			Ativo:        true,
		},
		{
			Nome:         "Ciência de Dados Aplicada a Negócios",
			Categoria:    "Ciência de Dados",
			Nivel:        "Intermediário",
			Descricao:    "Da coleta à visualização, com foco em métricas de negócio, storytelling e impacto em decisões.",
			CargaHoraria: "32h",
			Tag:          "Data Science",
			Ordem:        1,
			Ativo:        true,
		},
		{
			Nome:         "Inteligência Artificial e Machine Learning",
			Categoria:    "IA e ML",
			Nivel:        "Intermediário a Avançado",
			Descricao:    "Modelos preditivos, pipelines, explicabilidade e implantação em ambientes produtivos.",
			CargaHoraria: "36h",
			Tag:          "Machine Learning",
			Ordem:        2,
			Ativo:        true,
		},
		{
			Nome:         "Visualização de Dados e Storytelling",
			Categoria:    "Visualização",
			Nivel:        "Intermediário",
			Descricao:    "Dashboards, gráficos eficientes e comunicação orientada a executivos.",
			CargaHoraria: "20h",
			Tag:          "Data Viz",
			Ordem:        3,
			Ativo:        true,
		},
		{
			Nome:         "Estrutura de Dados e Algoritmos",
			Categoria:    "Fundamentos",
			Nivel:        "Intermediário",
			Descricao:    "Base de estruturas de dados e algoritmos para soluções escaláveis.",
			CargaHoraria: "24h",
			Tag:          "Algoritmos",
			Ordem:        4,
			Ativo:        true,
		},
		{
			Nome:         "Banco de Dados Relacionais e NoSQL",
			Categoria:    "Banco de Dados",
			Nivel:        "Intermediário",
			Descricao:    "Modelagem, SQL, MongoDB e conceitos de bancos híbridos para aplicações modernas.",
			CargaHoraria: "28h",
			Tag:          "Databases",
			Ordem:        5,
			Ativo:        true,
		},
	}
}
