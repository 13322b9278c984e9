package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"
)

// mailTemplate renders the HTML body of a failure mail: the error details
// followed by the free-form downstream-impact note.
var mailTemplate = template.Must(template.New("failure").Parse(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; margin: 20px; color: #333; }
h2 { color: #d9534f; }
.error { font-weight: bold; color: #d9534f; }
.note { background-color: #f9f2f4; border: 1px solid #d9534f; padding: 10px; border-radius: 4px; }
</style>
</head>
<body>
<h2>Task Failure</h2>
<p class="error">Task: {{.Task}}</p>
<p class="error">Error: {{.Error}}</p>
{{if .Note}}<h3>Downstream Impact</h3><div class="note">{{.Note}}</div>{{end}}
</body>
</html>
`))

// SMTP sends HTML-formatted failure mails. The zero value is not usable;
// construct it with NewSMTP.
type SMTP struct {
	addr string
	from string
	to   []string
	auth smtp.Auth
	// send is swapped out in tests.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP creates an SMTP notifier. addr is the server in host:port form;
// auth may be nil for unauthenticated relays.
func NewSMTP(addr, from string, to []string, auth smtp.Auth) *SMTP {
	return &SMTP{addr: addr, from: from, to: to, auth: auth, send: smtp.SendMail}
}

// NotifyFailure implements task.Notifier.
func (s *SMTP) NotifyFailure(ctx context.Context, name string, taskErr error, note string) error {
	body := &bytes.Buffer{}
	err := mailTemplate.Execute(body, struct {
		Task  string
		Error string
		Note  string
	}{Task: name, Error: taskErr.Error(), Note: note})
	if err != nil {
		return fmt.Errorf("rendering failure mail for task %q: %w", name, err)
	}

	msg := &bytes.Buffer{}
	fmt.Fprintf(msg, "From: %s\r\n", s.from)
	fmt.Fprintf(msg, "To: %s\r\n", strings.Join(s.to, ","))
	fmt.Fprintf(msg, "Subject: Error in task %s\r\n", name)
	fmt.Fprintf(msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(msg, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	fmt.Fprintf(msg, "\r\n")
	msg.Write(body.Bytes())

	if err := s.send(s.addr, s.auth, s.from, s.to, msg.Bytes()); err != nil {
		return fmt.Errorf("sending failure mail for task %q: %w", name, err)
	}
	return nil
}
