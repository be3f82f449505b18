package mailer

import (
	"crypto/tls"

	"gopkg.in/gomail.v2"

	"aieduc/config"
	"aieduc/internal/pkg/logger"
)

// Mailer define o contrato de envio de notificações por e-mail.
// O envio é sempre "melhor esforço": nenhuma falha de transporte é propagada
// ao chamador — a operação primária (cadastro, login, lead) nunca depende
// da entrega da notificação.
type Mailer interface {
	Send(to []string, subject string, body string)
}

// SMTPMailer é a implementação concreta da interface Mailer, usando SMTP.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	useTLS   bool
	from     string
	logger   logger.Logger
}

// NewMailer cria o Mailer a partir da configuração. Se SMTP_HOST não estiver
// definido, o envio fica desabilitado: Send vira um no-op silencioso (não é erro).
func NewMailer(cfg *config.Config, log logger.Logger) Mailer {
	if cfg.SMTPHost == "" {
		log.Info("SMTP_HOST não definido. Envio de e-mails desabilitado.", nil)
		return &disabledMailer{}
	}

	// Cadeia de fallback do remetente: FROM_EMAIL > SMTP_USER > no-reply
	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUser
	}
	if from == "" {
		from = "no-reply@example.com"
	}

	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		useTLS:   cfg.SMTPUseTLS,
		from:     from,
		logger:   log,
	}
}

// Send envia um e-mail de texto simples para os destinatários informados.
// Destinatários vazios são filtrados; se nada restar, é um no-op.
// Falhas de conexão, autenticação ou transporte são apenas logadas.
func (m *SMTPMailer) Send(to []string, subject string, body string) {
	recipients := filterEmpty(to)
	if len(recipients) == 0 {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	if m.useTLS {
		// STARTTLS na porta padrão; TLS implícito na 465
		dialer.SSL = m.port == 465
		dialer.TLSConfig = &tls.Config{ServerName: m.host}
	}

	if err := dialer.DialAndSend(msg); err != nil {
		// Contrato fire-and-forget: a falha é absorvida aqui e registrada
		// apenas para operabilidade.
		m.logger.Warn("Falha ao enviar e-mail de notificação.", map[string]interface{}{
			"subject": subject,
			"error":   err.Error(),
		})
	}
}

// disabledMailer é o no-op usado quando o SMTP não está configurado.
type disabledMailer struct{}

func (d *disabledMailer) Send(to []string, subject string, body string) {}

// filterEmpty remove endereços vazios da lista de destinatários.
func filterEmpty(to []string) []string {
	var out []string
	for _, addr := range to {
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
