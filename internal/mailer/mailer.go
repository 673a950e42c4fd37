package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/sharpfade/barbershop-api/internal/config"
	"github.com/sharpfade/barbershop-api/internal/models"
)

type message struct {
	to      string
	subject string
	body    string
}

// Mailer sends client-facing notification mail off the request path.
// Messages go through a buffered queue; when it fills up the mail is
// dropped, never the booking.
type Mailer struct {
	host  string
	addr  string
	auth  smtp.Auth
	from  string
	queue chan message
}

func New(cfg *config.Config) *Mailer {
	m := &Mailer{
		host:  cfg.SMTPHost,
		addr:  cfg.SMTPHost + ":" + cfg.SMTPPort,
		from:  cfg.SMTPFrom,
		queue: make(chan message, 100),
	}

	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		m.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	go m.worker()
	return m
}

func (m *Mailer) worker() {
	for msg := range m.queue {
		if err := m.send(msg); err != nil {
			zap.L().Error("mail send failed",
				zap.String("to", msg.to),
				zap.String("subject", msg.subject),
				zap.Error(err),
			)
		}
	}
}

func (m *Mailer) send(msg message) error {
	if m.host == "" {
		// No SMTP configured (local development): log and move on.
		zap.L().Debug("mail skipped, smtp not configured",
			zap.String("to", msg.to),
			zap.String("subject", msg.subject),
		)
		return nil
	}

	raw := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, msg.to, msg.subject, msg.body,
	))

	return smtp.SendMail(m.addr, m.auth, m.from, []string{msg.to}, raw)
}

func (m *Mailer) enqueue(msg message) {
	if msg.to == "" {
		return
	}

	select {
	case m.queue <- msg:
	default:
		zap.L().Warn("mail queue full, dropping message", zap.String("subject", msg.subject))
	}
}

// ===============================
// Notifications
// ===============================

func (m *Mailer) BookingCreated(bk *models.Booking, shop *models.Barbershop, client *models.Client, svc *models.Service) {
	m.enqueue(message{
		to:      client.Email,
		subject: fmt.Sprintf("Booking received - %s", shop.Name),
		body: fmt.Sprintf(
			"Hi %s,\n\nWe received your booking for %s on %s.\nReference: %s\n\nYou will get another email once the barber confirms.\n\n%s",
			client.Name,
			svc.Name,
			bk.StartTime.Format("Mon, 02 Jan 2006 at 15:04"),
			bk.Reference,
			shop.Name,
		),
	})
}

func (m *Mailer) BookingConfirmed(bk *models.Booking, shop *models.Barbershop) {
	m.enqueue(message{
		to:      bk.Client.Email,
		subject: fmt.Sprintf("Booking confirmed - %s", shop.Name),
		body: fmt.Sprintf(
			"Hi %s,\n\nYour booking on %s is confirmed.\nReference: %s\n\nSee you soon,\n%s",
			bk.Client.Name,
			bk.StartTime.Format("Mon, 02 Jan 2006 at 15:04"),
			bk.Reference,
			shop.Name,
		),
	})
}

func (m *Mailer) BookingCancelled(bk *models.Booking, shop *models.Barbershop) {
	m.enqueue(message{
		to:      bk.Client.Email,
		subject: fmt.Sprintf("Booking cancelled - %s", shop.Name),
		body: fmt.Sprintf(
			"Hi %s,\n\nYour booking on %s was cancelled.\nReference: %s\n\nYou can pick a new time any moment on our booking page.\n\n%s",
			bk.Client.Name,
			bk.StartTime.Format("Mon, 02 Jan 2006 at 15:04"),
			bk.Reference,
			shop.Name,
		),
	})
}

func (m *Mailer) PasswordReset(email, name, token string) {
	m.enqueue(message{
		to:      email,
		subject: "Password reset",
		body: fmt.Sprintf(
			"Hi %s,\n\nUse this code to reset your password: %s\n\nThe code expires in 30 minutes. If you didn't ask for it, ignore this email.",
			name,
			token,
		),
	})
}
