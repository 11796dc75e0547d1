package service

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

var resetEmailTmpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hello {{.Name}},</h2>
  <p>You requested to reset your password. Click the link below to create a new one:</p>
  <p><a href="{{.ResetURL}}">Reset Password</a></p>
  <p>If the link doesn't work, copy and paste this address into your browser:</p>
  <p>{{.ResetURL}}</p>
  <p><strong>This link expires in 1 hour.</strong></p>
  <p>If you didn't request this reset, you can ignore this email.</p>
</body>
</html>`))

var resetConfirmationTmpl = template.Must(template.New("reset_confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hello {{.Name}},</h2>
  <p>Your password has been successfully reset.</p>
  <p>If you did not make this change, contact support immediately.</p>
</body>
</html>`))

func passwordResetMessage(to, name, resetURL string) (ports.EmailMessage, error) {
	var buf strings.Builder
	err := resetEmailTmpl.Execute(&buf, struct {
		Name     string
		ResetURL string
	}{Name: name, ResetURL: resetURL})
	if err != nil {
		return ports.EmailMessage{}, fmt.Errorf("render reset email: %w", err)
	}
	return ports.EmailMessage{To: to, Subject: "Reset Your Password", HTML: buf.String()}, nil
}

func passwordResetConfirmation(to, name string) (ports.EmailMessage, error) {
	var buf strings.Builder
	err := resetConfirmationTmpl.Execute(&buf, struct{ Name string }{Name: name})
	if err != nil {
		return ports.EmailMessage{}, fmt.Errorf("render confirmation email: %w", err)
	}
	return ports.EmailMessage{To: to, Subject: "Password Reset Successful", HTML: buf.String()}, nil
}
