package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aieduc/config"
	"aieduc/internal/pkg/logger"
	"aieduc/internal/pkg/mailer"
)

// TestNewMailer_DisabledWithoutHost garante que sem SMTP_HOST o Send é um
// no-op silencioso: não é erro e não tenta transporte algum.
func TestNewMailer_DisabledWithoutHost(t *testing.T) {
	cfg := &config.Config{SMTPHost: ""}

	m := mailer.NewMailer(cfg, logger.NewLogger("debug"))
	assert.NotNil(t, m)

	// Não deve haver pânico nem efeito colateral
	m.Send([]string{"ana@x.com"}, "assunto", "corpo")
	m.Send(nil, "assunto", "corpo")
	m.Send([]string{""}, "assunto", "corpo")
}
