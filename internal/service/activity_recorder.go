// Package service holds the glue between request handlers and the
// background activity pipeline.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/languagebaba/site-api/internal/model"
	q "github.com/languagebaba/site-api/internal/queue"
	"github.com/languagebaba/site-api/internal/repository"
)

// ActivityRecorder records audit events without ever blocking or
// failing the request that produced them. Events are published to the
// activity.recorded queue when a broker is configured; when publishing
// fails, or no broker URL is set, the entry is written straight to the
// database instead. Every path is best effort: failures are logged and
// swallowed.
type ActivityRecorder struct {
	Repo    *repository.ActivityRepo
	AMQPURL string // empty disables the broker path
}

func NewActivityRecorder(repo *repository.ActivityRepo, amqpURL string) *ActivityRecorder {
	return &ActivityRecorder{Repo: repo, AMQPURL: amqpURL}
}

// Record hands the event to a goroutine and returns immediately.
func (r *ActivityRecorder) Record(e q.ActivityEvent) {
	if e.OccurredAt == "" {
		e.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}
	go r.deliver(e)
}

func (r *ActivityRecorder) deliver(e q.ActivityEvent) {
	if r.AMQPURL != "" {
		if err := publish(r.AMQPURL, e); err == nil {
			return
		}
		// fall through to the direct write
	}
	if r.Repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := model.ActivityLog{
		UserID:       e.ActorID,
		ActivityType: e.ActivityType,
		Action:       e.Action,
		Description:  e.Description,
		Severity:     e.Severity,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
	}
	if ts, err := time.Parse(time.RFC3339, e.OccurredAt); err == nil {
		entry.CreatedAt = ts
	}
	if err := r.Repo.Insert(ctx, entry); err != nil {
		log.Printf("activity-recorder: direct insert failed: %v", err)
	}
}

// publish sends one event to the activity.recorded queue. Messages are
// marked persistent so audit entries survive a broker restart. Errors
// are logged and returned so the caller can fall back to the database.
func publish(url string, event q.ActivityEvent) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive
	// broker restarts.
	if _, err := ch.QueueDeclare(q.ActivityQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ch.PublishWithContext(ctx, "", q.ActivityQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
