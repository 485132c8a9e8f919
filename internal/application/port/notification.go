package port

import "context"

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a desktop notification.
type Notification struct {
	Title string
	Body  string
	Type  NotificationType
	// TimeoutMs is how long the notification stays visible; 0 uses the sink default.
	TimeoutMs int
}

// Notifier displays desktop notifications asynchronously. No acknowledgment is
// expected; an error only means the notification could not be handed off.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
