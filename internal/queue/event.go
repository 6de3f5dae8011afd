// Package queue defines message payloads exchanged over the message broker.
package queue

// ActivityQueueName is the durable queue carrying audit events from the
// API to the background writer.
const ActivityQueueName = "activity.recorded"

// ActivityEvent is published whenever something auditable happens: a
// login, a content edit, a rejected device. It carries the full audit
// entry so the consumer can persist it without querying back into the
// request path. ActorID is nil for unauthenticated actors (e.g. device
// guard denials).
type ActivityEvent struct {
	ActorID      *uint64 `json:"actor_id"`
	ActivityType string  `json:"activity_type"`
	Action       string  `json:"action"`
	Description  string  `json:"description"`
	Severity     string  `json:"severity"` // info | success | warning | danger
	IPAddress    *string `json:"ip_address"`
	UserAgent    *string `json:"user_agent"`
	OccurredAt   string  `json:"occurred_at"` // RFC3339
}
