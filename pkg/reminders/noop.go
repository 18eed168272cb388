package reminders

import "context"

// NoOpNotifier is a notifier that does nothing, for local runs and tests.
type NoOpNotifier struct{}

// SendReminder does nothing.
func (n *NoOpNotifier) SendReminder(ctx context.Context, reminder Reminder) error {
	return nil
}
