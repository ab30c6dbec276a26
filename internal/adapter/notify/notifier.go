package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// Notifier turns workflow events into e-mails.
type Notifier struct {
	sender Sender
	log    *slog.Logger
}

// NewNotifier creates a Notifier on top of sender.
func NewNotifier(sender Sender, logger *slog.Logger) *Notifier {
	return &Notifier{sender: sender, log: logger.With("adapter", "notify")}
}

// StatusChanged tells the record owner that a reviewer moved their record.
func (n *Notifier) StatusChanged(ctx context.Context, owner *domain.User, rec *domain.Record, from, to domain.RecordStatus) error {
	if owner == nil || owner.Email == "" {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", displayName(owner))
	fmt.Fprintf(&b, "Your training record %s moved from %s to %s.\n", rec.ID, humanStatus(from), humanStatus(to))
	if to.IsTerminal() {
		b.WriteString("The review is complete.\n")
	}

	return n.sender.Send(ctx, Message{
		ToName:    owner.Name,
		ToAddress: owner.Email,
		Subject:   "Training record " + humanStatus(to),
		Text:      b.String(),
	})
}

func displayName(u *domain.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func humanStatus(s domain.RecordStatus) string {
	return strings.ToLower(strings.ReplaceAll(s.String(), "_", " "))
}
