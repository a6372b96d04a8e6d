package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"event-marketplace/internal/models"

	"github.com/sirupsen/logrus"
)

// NotificationTemplate is an admin-editable message template. Body and
// subject may contain {{placeholder}} markers filled in at send time.
type NotificationTemplate struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Notifier renders notification templates and "delivers" them. Real
// delivery is out of scope; sending logs the rendered message.
type Notifier struct {
	mu        sync.RWMutex
	templates map[string]NotificationTemplate
	logger    *logrus.Entry
}

// NewNotifier creates a notifier with the built-in templates
func NewNotifier(logger *logrus.Logger) *Notifier {
	n := &Notifier{
		templates: make(map[string]NotificationTemplate),
		logger:    logger.WithField("component", "notifier"),
	}

	defaults := []NotificationTemplate{
		{
			Name:    "booking_confirmation",
			Subject: "Your tickets for {{event}}",
			Body:    "Hi {{name}}, your booking is confirmed. Confirmation code: {{code}}.",
		},
		{
			Name:    "event_reminder",
			Subject: "Reminder: {{event}} is coming up",
			Body:    "Hi {{name}}, {{event}} starts on {{date}} at {{time}}. See you there!",
		},
		{
			Name:    "booking_cancellation",
			Subject: "Booking cancelled for {{event}}",
			Body:    "Hi {{name}}, your booking {{code}} has been cancelled.",
		},
	}
	for _, tmpl := range defaults {
		n.templates[tmpl.Name] = tmpl
	}

	return n
}

// Templates returns all templates sorted by name
func (n *Notifier) Templates() []NotificationTemplate {
	n.mu.RLock()
	defer n.mu.RUnlock()

	templates := make([]NotificationTemplate, 0, len(n.templates))
	for _, tmpl := range n.templates {
		templates = append(templates, tmpl)
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates
}

// Template returns the named template
func (n *Notifier) Template(name string) (NotificationTemplate, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	tmpl, ok := n.templates[name]
	if !ok {
		return NotificationTemplate{}, fmt.Errorf("%w: unknown template %q", models.ErrInvalidInput, name)
	}
	return tmpl, nil
}

// UpdateTemplate replaces the named template's subject and body
func (n *Notifier) UpdateTemplate(name, subject, body string) error {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: template subject and body are required", models.ErrInvalidInput)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.templates[name]; !ok {
		return fmt.Errorf("%w: unknown template %q", models.ErrInvalidInput, name)
	}

	n.templates[name] = NotificationTemplate{Name: name, Subject: subject, Body: body}
	return nil
}

// Render substitutes data into the named template
func (n *Notifier) Render(name string, data map[string]string) (subject, body string, err error) {
	tmpl, err := n.Template(name)
	if err != nil {
		return "", "", err
	}

	return substitute(tmpl.Subject, data), substitute(tmpl.Body, data), nil
}

// Send renders the named template and logs the delivery
func (n *Notifier) Send(name, recipient string, data map[string]string) error {
	subject, body, err := n.Render(name, data)
	if err != nil {
		return err
	}

	n.logger.WithFields(logrus.Fields{
		"template":  name,
		"recipient": recipient,
		"subject":   subject,
	}).Info("notification sent")
	n.logger.Debug(body)
	return nil
}

func substitute(text string, data map[string]string) string {
	for key, value := range data {
		text = strings.ReplaceAll(text, "{{"+key+"}}", value)
	}
	return text
}
