package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

type templateData struct {
	Username string
	Link     string
}

var (
	verificationTemplate = template.Must(template.New("verification").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hello {{.Username}},</h2>
  <p>Thank you for registering with <strong>Segura-Mente</strong>.</p>
  <p>To activate your account, please verify your email address by clicking the link below:</p>
  <p><a href="{{.Link}}">Verify my account</a></p>
  <p>Or copy this link into your browser:</p>
  <p>{{.Link}}</p>
  <p>If you did not create this account, you can safely ignore this email.</p>
</body>
</html>`))

	welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Congratulations {{.Username}}!</h2>
  <p>Your <strong>Segura-Mente</strong> account has been verified successfully.</p>
  <p>You can now log in and start using our services.</p>
</body>
</html>`))

	resetTemplate = template.Must(template.New("reset").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hello {{.Username}},</h2>
  <p>We received a request to reset the password of your <strong>Segura-Mente</strong> account.</p>
  <p><a href="{{.Link}}">Reset password</a></p>
  <p>Or copy this link into your browser:</p>
  <p>{{.Link}}</p>
  <p>This link is valid for <strong>1 hour</strong>. If you did not request this change, ignore this email;
  your current password remains valid.</p>
</body>
</html>`))
)

func renderTemplate(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}
