// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"github.com/pdiddy/arxiv-crosslist/pkg/types"
)

func testDigest() types.Digest {
	return types.Digest{
		Title:       "New quant-ph submissions cross listed on cond-mat.str-el",
		FeedUpdated: "2026-10-19T00:00:00Z",
		HTMLBody:    "<h1>New quant-ph submissions</h1>Feed last updated: 2026-10-19T00:00:00Z",
	}
}

func testMailCfg() types.MailConfig {
	return types.MailConfig{
		Enabled:  true,
		Host:     "smtp.example.com",
		Address:  "reader@example.com",
		Password: "hunter2",
		StartTLS: true,
	}
}

func TestBuildMessage(t *testing.T) {
	m, err := BuildMessage(testDigest(), "reader@example.com")
	require.NoError(t, err)

	assert.Equal(t, []string{testDigest().Title}, m.GetGenHeader(gomail.HeaderSubject))

	from := m.GetFromString()
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "reader@example.com")

	to := m.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "reader@example.com")

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
}

func TestBuildMessageBadAddress(t *testing.T) {
	_, err := BuildMessage(testDigest(), "not an address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting sender")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(testMailCfg()))

	err := Validate(types.MailConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host")
	assert.Contains(t, err.Error(), "address")
	assert.Contains(t, err.Error(), "password")
}

func TestSend(t *testing.T) {
	s := NewSender(testMailCfg(), nil)

	var sent *gomail.Msg
	s.dial = func(_ context.Context, c *gomail.Client, m *gomail.Msg) error {
		sent = m
		return nil
	}

	require.NoError(t, s.Send(context.Background(), testDigest()))
	require.NotNil(t, sent)
	assert.Equal(t, []string{testDigest().Title}, sent.GetGenHeader(gomail.HeaderSubject))
}

func TestSendDialError(t *testing.T) {
	s := NewSender(testMailCfg(), nil)
	dialErr := errors.New("connection refused")
	s.dial = func(context.Context, *gomail.Client, *gomail.Msg) error { return dialErr }

	err := s.Send(context.Background(), testDigest())
	require.Error(t, err)
	assert.ErrorIs(t, err, dialErr)
	assert.Contains(t, err.Error(), "smtp.example.com")
}

func TestSendInvalidConfig(t *testing.T) {
	s := NewSender(types.MailConfig{Host: "smtp.example.com"}, nil)
	called := false
	s.dial = func(context.Context, *gomail.Client, *gomail.Msg) error {
		called = true
		return nil
	}

	require.Error(t, s.Send(context.Background(), testDigest()))
	assert.False(t, called)
}

func TestPortDefault(t *testing.T) {
	assert.Equal(t, 587, NewSender(types.MailConfig{}, nil).port())
	assert.Equal(t, 465, NewSender(types.MailConfig{Port: 465}, nil).port())
}
