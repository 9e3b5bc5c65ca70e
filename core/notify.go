package core

import (
	"bytes"
	"embed"
	"net/mail"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/pkg/errors"
)

type NotificationKind string

const (
	NotifySignedIn  NotificationKind = "signed_in"
	NotifySubmitted NotificationKind = "submitted"
	NotifyEvaluated NotificationKind = "evaluated"
)

var (
	//go:embed templates/notifications/*.txt
	templateFS embed.FS

	templates *template.Template
	tmplErr   error
	tmplInit  sync.Once
)

type (
	Notification struct {
		Kind      NotificationKind
		Recipient mail.Address
		BodyStr   string // simple non-templated content

		// templated content; the template name defaults to Kind
		TemplateName string
		TemplateData interface{}
		Text         string
	}

	ContextData struct {
		Kind NotificationKind
		Data interface{}
	}

	// Notifier is anything that can deliver notifications to accounts.
	Notifier interface {
		Notify(notifications ...*Notification)
	}
)

func parseTemplates() {
	templates, tmplErr = template.New("notifications").
		Option("missingkey=error").
		ParseFS(templateFS, path.Join("templates", "notifications", "*.txt"))
}

func (n *Notification) templateName() string {
	if n.TemplateName != "" {
		return n.TemplateName
	}
	return string(n.Kind)
}

// Render fills Text from BodyStr or from the notification template.
func (n *Notification) Render() error {
	if n.BodyStr != "" {
		n.Text = n.BodyStr
		return nil
	}

	tmplInit.Do(parseTemplates) // only parse once
	if tmplErr != nil {
		return errors.Wrap(tmplErr, "parsing notification templates")
	}
	tmpl := templates.Lookup(n.templateName() + ".txt")
	if tmpl == nil {
		return errors.Errorf("notification template %q not found", n.templateName())
	}

	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, ContextData{Kind: n.Kind, Data: n.TemplateData}); err != nil {
		return errors.Wrapf(err, "rendering %s notification", n.templateName())
	}
	n.Text = strings.TrimSpace(buff.String())
	return nil
}

func (n *Notification) HasContent() bool { return n.Text != "" }
