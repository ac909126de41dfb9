package constants

// NATS subjects for dispatch notifications
const (
	// SubjectNotifySMS carries fire-and-forget SMS events from the
	// dispatch service to the notify worker
	SubjectNotifySMS = "dispatch.notify.sms"

	// QueueNotifySMS is the queue group the notify workers join so each
	// event is delivered to exactly one worker
	QueueNotifySMS = "notify-sms-workers"
)
