// Package email envío de correos transaccionales por SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/pkg/config"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*LogMailer)(nil)
)

var credentialsTmpl = template.Must(template.New("credentials").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2 style="color: #123456;">Bienvenue sur CargoPilot</h2>
  <p>Bonjour {{.FullName}},</p>
  <p>Votre compte a été créé. Voici vos identifiants :</p>
  <ul>
    <li>Email : <strong>{{.Email}}</strong></li>
    <li>Mot de passe : <strong>{{.Password}}</strong></li>
  </ul>
  <p>Nous vous recommandons de changer votre mot de passe après votre première connexion.</p>
</body>
</html>`))

const credentialsSubject = "Vos identifiants CargoPilot"

// SMTPMailer envía con gomail. Cada envío abre su propia conexión.
type SMTPMailer struct {
	from string
	send func(m ...*gomail.Message) error
}

// NewSMTPMailer construye el mailer a partir de la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &SMTPMailer{from: cfg.From, send: d.DialAndSend}
}

// SendCredentials envía las credenciales iniciales de una cuenta nueva.
func (s *SMTPMailer) SendCredentials(ctx context.Context, to, fullName, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := renderCredentials(to, fullName, password)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", credentialsSubject)
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("smtp: enviar credenciales a %s: %w", to, err)
	}
	return nil
}

func renderCredentials(to, fullName, password string) (string, error) {
	var buf bytes.Buffer
	err := credentialsTmpl.Execute(&buf, struct{ Email, FullName, Password string }{to, fullName, password})
	if err != nil {
		return "", fmt.Errorf("email: plantilla credenciales: %w", err)
	}
	return buf.String(), nil
}

// LogMailer sustituto cuando no hay SMTP configurado: solo registra el destinatario.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (l *LogMailer) SendCredentials(_ context.Context, to, fullName, _ string) error {
	l.log.Info().Str("to", to).Str("full_name", fullName).Msg("SMTP no configurado: correo de credenciales omitido")
	return nil
}
