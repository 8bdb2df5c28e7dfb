package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// Email subjects. The admin notification subject carries the visitor's
// own subject line.
const (
	SubjectWelcome    = "Welcome to My Portfolio Newsletter!"
	SubjectAutoReply  = "Thank you for contacting me!"
	SubjectNewsletter = "Monthly Portfolio Newsletter"
)

// SubjectAdminNotify builds the subject for the site-owner notification.
func SubjectAdminNotify(subject string) string {
	return fmt.Sprintf("New Contact Form: %s", subject)
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h1>Welcome to My Portfolio Newsletter!</h1>
<p>Thank you for subscribing to my newsletter. You'll receive updates about my latest projects, blog posts, and achievements.</p>
<p>Stay tuned for exciting content!</p>
<br>
<p>Best regards,</p>
<p>Gundeep Marwah</p>
`))

var autoReplyTmpl = template.Must(template.New("auto-reply").Parse(`
<h1>Thank you for reaching out!</h1>
<p>Hello {{.Name}},</p>
<p>I've received your message regarding "{{.Subject}}" and I appreciate you taking the time to contact me.</p>
<p>I'll review your message and get back to you as soon as possible.</p>
<br>
<p>Best regards,</p>
<p>Gundeep Marwah</p>
`))

var adminNotifyTmpl = template.Must(template.New("admin-notify").Parse(`
<h1>New Contact Form Submission</h1>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

var newsletterTmpl = template.Must(template.New("newsletter").Parse(`
<h2>Monthly Portfolio Updates</h2>
<p>Here are my latest updates!</p>
<p>Stay tuned for more updates!</p>
<p>Best regards,<br>Gundeep Marwah</p>
`))

// RenderWelcome renders the welcome-email body.
func RenderWelcome() (string, error) {
	return render(welcomeTmpl, nil)
}

// RenderAutoReply renders the auto-reply body sent back to a contact-form sender.
func RenderAutoReply(name, subject string) (string, error) {
	return render(autoReplyTmpl, struct{ Name, Subject string }{name, subject})
}

// RenderAdminNotify renders the internal notification about a new contact message.
func RenderAdminNotify(name, email, subject, message string) (string, error) {
	return render(adminNotifyTmpl, struct{ Name, Email, Subject, Message string }{name, email, subject, message})
}

// RenderNewsletter renders the monthly newsletter body.
func RenderNewsletter() (string, error) {
	return render(newsletterTmpl, nil)
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
