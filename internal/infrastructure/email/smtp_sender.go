// Package email envía el reporte de inventario por SMTP.
package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"time"

	mail "github.com/go-mail/mail"

	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/pkg/config"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

var _ reporte.EmailSender = (*SMTPSender)(nil)

const (
	TLSModeStartTLS = "starttls"
	TLSModeSSL      = "ssl"
	TLSModeNone     = "none"
)

var cuerpoTmpl = template.Must(template.New("reporte").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family: Helvetica, Arial, sans-serif; color: #1a1a1a;">
  <h2 style="color: #0d0d0d;">Reporte de Inventario</h2>
  <p>Hola,</p>
  <p>Adjunto encontrarás el reporte de inventario generado desde la plataforma Lite Thinking.</p>
  <table style="border-collapse: collapse; margin: 16px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #888;">Fecha de corte</td><td><strong>{{.Fecha}}</strong></td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #888;">Destinatario</td><td>{{.Para}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #888;">Archivo</td><td>{{.Archivo}}</td></tr>
  </table>
  <p style="font-size: 12px; color: #888;">Este correo fue generado automáticamente. Ref: {{.ID}}</p>
</body>
</html>`))

type cuerpoData struct {
	ID      string
	Para    string
	Fecha   string
	Archivo string
}

// SMTPSender implementa reporte.EmailSender con go-mail.
type SMTPSender struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	tlsMode string
	timeout time.Duration
	log     *logger.Logger
}

// NewSMTPSender construye el sender a partir de la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig, log *logger.Logger) *SMTPSender {
	if log == nil {
		log = logger.Nop()
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	mode := cfg.TLSMode
	if mode == "" {
		mode = TLSModeStartTLS
	}
	return &SMTPSender{
		host:    cfg.Host,
		port:    cfg.Port,
		user:    cfg.User,
		pass:    cfg.Password,
		from:    from,
		tlsMode: mode,
		timeout: 15 * time.Second,
		log:     log.Component("smtp"),
	}
}

// EnviarReporte arma el mensaje con el PDF adjunto y lo entrega al servidor SMTP.
func (s *SMTPSender) EnviarReporte(ctx context.Context, c reporte.Correo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.buildMessage(c)
	if err != nil {
		return err
	}

	d := mail.NewDialer(s.host, s.port, s.user, s.pass)
	d.Timeout = s.timeout
	d.TLSConfig = &tls.Config{ServerName: s.host}
	switch s.tlsMode {
	case TLSModeSSL:
		d.SSL = true
	case TLSModeNone:
		d.StartTLSPolicy = mail.NoStartTLS
	default:
		d.StartTLSPolicy = mail.MandatoryStartTLS
	}

	if err := d.DialAndSend(m); err != nil {
		s.log.Error().Err(err).Str("to", c.Para).Str("envio_id", c.ID).Msg("smtp send failed")
		return fmt.Errorf("smtp send: %w", err)
	}

	s.log.Info().Str("to", c.Para).Str("envio_id", c.ID).Int("bytes", len(c.Adjunto.Contenido)).Msg("reporte enviado")
	return nil
}

func (s *SMTPSender) buildMessage(c reporte.Correo) (*mail.Message, error) {
	var body bytes.Buffer
	err := cuerpoTmpl.Execute(&body, cuerpoData{
		ID:      c.ID,
		Para:    c.Para,
		Fecha:   c.Fecha.Format("2006-01-02 15:04"),
		Archivo: c.Adjunto.Nombre,
	})
	if err != nil {
		return nil, fmt.Errorf("email: render cuerpo: %w", err)
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", c.Para)
	m.SetHeader("Subject", c.Asunto)
	m.SetHeader("X-Envio-ID", c.ID)
	m.SetDateHeader("Date", c.Fecha)
	m.SetBody("text/html", body.String())
	m.AttachReader(c.Adjunto.Nombre, bytes.NewReader(c.Adjunto.Contenido),
		mail.SetHeader(map[string][]string{"Content-Type": {c.Adjunto.ContentType}}),
	)
	return m, nil
}
