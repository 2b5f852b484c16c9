package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/thegambler1/qmdigital/models"
)

const notifyTimeout = 15 * time.Second

// RecipientFunc resolves where contact notifications go
type RecipientFunc func(ctx context.Context) (string, error)

// ContactNotifier emails the site owner about new contact form submissions
type ContactNotifier struct {
	mailer    *Mailer
	recipient RecipientFunc
	logger    zerolog.Logger
}

func NewContactNotifier(mailer *Mailer, recipient RecipientFunc, logger zerolog.Logger) *ContactNotifier {
	return &ContactNotifier{mailer: mailer, recipient: recipient, logger: logger}
}

// Notify sends the notification synchronously
func (n *ContactNotifier) Notify(ctx context.Context, contact models.Contact) error {
	if n == nil || !n.mailer.Configured() {
		return ErrMailerNotConfigured
	}

	to, err := n.recipient(ctx)
	if err != nil {
		return fmt.Errorf("resolve notification recipient: %w", err)
	}
	if to == "" {
		return fmt.Errorf("no notification recipient configured")
	}

	_, err = n.mailer.Send(ctx, ResendEmailRequest{
		To:      []string{to},
		Subject: fmt.Sprintf("New %s inquiry from %s", contact.ProjectType, contact.Name),
		Text:    contactBody(contact),
		ReplyTo: contact.Email,
	})
	return err
}

// NotifyAsync sends in the background; failures are only logged
func (n *ContactNotifier) NotifyAsync(contact models.Contact) {
	if n == nil || !n.mailer.Configured() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := n.Notify(ctx, contact); err != nil {
			n.logger.Error().Err(err).Str("contactId", contact.ID).Msg("Failed to send contact notification")
		}
	}()
}

func contactBody(c models.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Project type: %s\n", c.ProjectType)
	fmt.Fprintf(&b, "Received: %s\n\n", c.CreatedAt.Format(time.RFC1123))
	b.WriteString(c.Message)
	b.WriteString("\n")
	return b.String()
}
