package service

import (
	"github.com/sirupsen/logrus"
)

// EmailService sends notification emails. Sending is fire-and-forget:
// callers never observe delivery failures.
type EmailService interface {
	Send(recipientEmail, subject, body string)
}

type logEmailService struct {
	log  *logrus.Logger
	from string
}

// NewLogEmailService returns an EmailService that writes the message to the
// log instead of delivering it. Stands in for a real provider integration.
func NewLogEmailService(log *logrus.Logger, from string) EmailService {
	return &logEmailService{log: log, from: from}
}

func (s *logEmailService) Send(recipientEmail, subject, body string) {
	s.log.WithFields(logrus.Fields{
		"from":    s.from,
		"to":      recipientEmail,
		"subject": subject,
		"body":    body,
	}).Info("Email sent")
}
