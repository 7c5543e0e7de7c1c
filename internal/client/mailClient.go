package client

import (
	"workhive-backend/internal/config"

	"gopkg.in/gomail.v2"
)

type MailSender interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailSender(mailCfg *config.Mail) MailSender {
	return &smtpMailSender{
		dialer: gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password),
		from:   mailCfg.From,
	}
}

func (s *smtpMailSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
