package services

import (
	"fmt"

	"chamba_backend/internal/email"
	"chamba_backend/internal/logger"
)

// Notifier sends transactional emails without blocking the request
// path. Delivery failures are logged and never surface to callers.
type Notifier struct {
	provider email.Provider
}

func NewNotifier(provider email.Provider) *Notifier {
	return &Notifier{provider: provider}
}

func (n *Notifier) send(msg email.Message) {
	if n == nil || n.provider == nil || msg.To == "" {
		return
	}
	go func() {
		if err := n.provider.Send(msg); err != nil {
			logger.Warn("notification email failed", "to", msg.To, "subject", msg.Subject, "error", err)
		}
	}()
}

func (n *Notifier) NewApplication(employerEmail, employerName, projectTitle, freelancerName string) {
	n.send(email.Message{
		To:      employerEmail,
		Subject: fmt.Sprintf("Nueva aplicación para %q", projectTitle),
		Body: fmt.Sprintf(
			"Hola %s,\n\n%s aplicó a tu proyecto %q. Ingresa a Chamba para revisar la propuesta.\n",
			employerName, freelancerName, projectTitle),
	})
}

func (n *Notifier) CategoryApproved(suggesterEmail, suggesterName, categoryName string) {
	n.send(email.Message{
		To:      suggesterEmail,
		Subject: fmt.Sprintf("Tu categoría %q fue aprobada", categoryName),
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu sugerencia de categoría fue aprobada como %q y ya está disponible para todos los proyectos.\n",
			suggesterName, categoryName),
	})
}

func (n *Notifier) CategoryReassigned(suggesterEmail, suggesterName, suggestedName, finalName string) {
	n.send(email.Message{
		To:      suggesterEmail,
		Subject: fmt.Sprintf("Tu sugerencia %q fue asignada a una categoría existente", suggestedName),
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu sugerencia %q fue asignada a la categoría existente %q. Tu proyecto quedó actualizado.\n",
			suggesterName, suggestedName, finalName),
	})
}

func (n *Notifier) CategoryRejected(suggesterEmail, suggesterName, categoryName string) {
	n.send(email.Message{
		To:      suggesterEmail,
		Subject: fmt.Sprintf("Tu sugerencia %q no fue aprobada", categoryName),
		Body: fmt.Sprintf(
			"Hola %s,\n\nTu sugerencia de categoría %q no fue aprobada. Puedes usar una categoría existente o proponer otra.\n",
			suggesterName, categoryName),
	})
}
