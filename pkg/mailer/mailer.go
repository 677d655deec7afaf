package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/werawoot/Krua-Thai1-sub002/pkg/logger"

	"go.uber.org/zap"
)

// Mailer sends plain-text mail over SMTP. With Dev set, messages are
// written to the log instead of being sent.
type Mailer struct {
	Host string
	Port string
	From string
	Dev  bool
}

func New(host, port, from string, dev bool) *Mailer {
	return &Mailer{Host: host, Port: port, From: from, Dev: dev}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.Dev || m.Host == "" {
		logger.L.Info("mail (dev, not sent)",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("body", body),
		)
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body))
	addr := m.Host + ":" + m.Port
	return smtp.SendMail(addr, nil, m.From, []string{to}, msg)
}
