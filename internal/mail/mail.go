// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mail delivers a digest as an HTML email over SMTP submission.
package mail

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

const defaultPort = 587

// Sender mails digests using the SMTP settings in Config.
type Sender struct {
	Config types.MailConfig
	Log    *zap.Logger

	// dial is replaced in tests.
	dial func(ctx context.Context, c *gomail.Client, m *gomail.Msg) error
}

// NewSender returns a Sender for cfg.
func NewSender(cfg types.MailConfig, log *zap.Logger) *Sender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sender{
		Config: cfg,
		Log:    log,
		dial: func(ctx context.Context, c *gomail.Client, m *gomail.Msg) error {
			return c.DialAndSendWithContext(ctx, m)
		},
	}
}

// Validate reports missing settings.
func Validate(cfg types.MailConfig) error {
	var errs []error
	if cfg.Host == "" {
		errs = append(errs, errors.New("mail host is empty"))
	}
	if cfg.Address == "" {
		errs = append(errs, errors.New("mail address is empty"))
	}
	if cfg.Password == "" {
		errs = append(errs, errors.New("mail password is empty (set mail.password or .secrets/smtp-password)"))
	}
	return errors.Join(errs...)
}

// BuildMessage returns the HTML message for d, sent from and to address.
func BuildMessage(d types.Digest, address string) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(address); err != nil {
		return nil, fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(address); err != nil {
		return nil, fmt.Errorf("setting recipient: %w", err)
	}
	m.Subject(d.Title)
	m.SetDate()
	m.SetBodyString(gomail.TypeTextHTML, d.HTMLBody)
	return m, nil
}

// Send delivers d. Authentication failures and connection errors are
// returned; nothing is retried.
func (s *Sender) Send(ctx context.Context, d types.Digest) error {
	if err := Validate(s.Config); err != nil {
		return err
	}

	m, err := BuildMessage(d, s.Config.Address)
	if err != nil {
		return err
	}

	c, err := s.client()
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	s.Log.Info("sending digest",
		zap.String("host", s.Config.Host),
		zap.Int("port", s.port()),
		zap.Int("entries", len(d.Entries)))
	if err := s.dial(ctx, c, m); err != nil {
		return fmt.Errorf("sending mail via %s: %w", s.Config.Host, err)
	}
	return nil
}

func (s *Sender) client() (*gomail.Client, error) {
	username := s.Config.Username
	if username == "" {
		username = s.Config.Address
	}

	tls := gomail.TLSOpportunistic
	if s.Config.StartTLS {
		tls = gomail.TLSMandatory
	}

	return gomail.NewClient(s.Config.Host,
		gomail.WithPort(s.port()),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(s.Config.Password),
		gomail.WithTLSPolicy(tls),
	)
}

func (s *Sender) port() int {
	if s.Config.Port == 0 {
		return defaultPort
	}
	return s.Config.Port
}
