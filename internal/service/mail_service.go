package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// MailService delivers the temporary credential to newly enrolled members.
// Delivery is best effort: callers only get a bool back and must never let
// a failed send undo a committed membership change.
type MailService interface {
	SendTemporaryPassword(ctx context.Context, email, name, password string) bool
}

type mailService struct {
	cfg    config.MailConfig
	appURL string
	log    *logrus.Logger
	client *resty.Client
}

func NewMailService(cfg config.MailConfig, appURL string, log *logrus.Logger) MailService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &mailService{
		cfg:    cfg,
		appURL: appURL,
		log:    log,
		client: client,
	}
}

type mailRequest struct {
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
}

func (s *mailService) SendTemporaryPassword(ctx context.Context, email, name, password string) bool {
	if s.cfg.APIKey == "" {
		s.log.Warn("Mail provider not configured - skipping credential delivery")
		return false
	}

	body := mailRequest{
		FromEmail: s.cfg.FromEmail,
		FromName:  s.cfg.FromName,
		To:        email,
		Subject:   "Bem-vindo à Família - Sua Senha de Acesso",
		HTML: fmt.Sprintf(
			`<p>Olá <strong>%s</strong>,</p>
<p>Você foi adicionado a uma família na nossa plataforma de análise genética.</p>
<p><strong>Email:</strong> %s<br><strong>Senha temporária:</strong> <code>%s</code></p>
<p>Recomendamos que você altere esta senha no primeiro acesso.</p>
<p>Para acessar a plataforma, visite: <a href="%s">%s</a></p>`,
			name, email, password, s.appURL, s.appURL,
		),
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/messages")
	if err != nil {
		s.log.Warnf("Failed to send credential email to %s: %+v", email, err)
		return false
	}
	if resp.IsError() {
		s.log.Warnf("Mail provider rejected message for %s: status %d", email, resp.StatusCode())
		return false
	}

	s.log.Infof("Credential email sent to %s", email)
	return true
}
