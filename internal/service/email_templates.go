package service

import (
	"bytes"
	"html/template"
)

// The pipeline sanitizes all user text before it reaches composition, so
// the templates receive pre-escaped values typed template.HTML to avoid
// double escaping.

var notificationTmpl = template.Must(template.New("notification").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Message:</strong></p>
<p style="white-space: pre-line;">{{.Message}}</p>
<hr>
<p><em>Sent from {{.SiteName}} website</em></p>
<p><small>IP: {{.IP}} | Time: {{.Time}}</small></p>
`))

var autoReplyTmpl = template.Must(template.New("autoReply").Parse(`
<h2>Thank you for reaching out, {{.Name}}!</h2>
<p>We have received your message and will get back to you within 2 hours.</p>
<p>Here's what we received:</p>
<blockquote style="white-space: pre-line;">{{.Message}}</blockquote>
<p>If you need immediate assistance, please call us at: <strong>{{.Phone}}</strong></p>
<br>
<p>Best regards,<br>{{.SiteName}} Team</p>
<hr>
<p style="font-size: 12px; color: #666;">
  This is an automated response. Please do not reply to this email.
</p>
`))

type notificationData struct {
	Name     template.HTML
	Email    template.HTML
	Phone    template.HTML
	Message  template.HTML
	SiteName string
	IP       string
	Time     string
}

type autoReplyData struct {
	Name     template.HTML
	Message  template.HTML
	Phone    string
	SiteName string
}

func renderNotification(data notificationData) (string, error) {
	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderAutoReply(data autoReplyData) (string, error) {
	var buf bytes.Buffer
	if err := autoReplyTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
