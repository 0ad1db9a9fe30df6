package services

//go:generate mockgen -source=activity.go -destination=activity_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ActivityRecorder records user actions.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, activityType string, useCaseID uuid.UUID, value string)
}

// ActivityPublisher publishes user actions to Kafka.
// Publishing is best effort: failures are logged and never returned.
type ActivityPublisher struct {
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
}

// ActivityOpt configures an ActivityPublisher.
type ActivityOpt func(*ActivityPublisher)

// WithAfterCommit delays publishing until the caller's transaction has committed.
// deferFn decides when the publish call runs; it may drop it.
func WithAfterCommit(deferFn func(ctx context.Context, fn func())) ActivityOpt {
	return func(p *ActivityPublisher) {
		p.afterCommit = deferFn
	}
}

// NewActivityPublisher creates a new ActivityPublisher. A nil writer disables publishing.
func NewActivityPublisher(kafkaWriter KafkaWriter, opts ...ActivityOpt) *ActivityPublisher {
	p := &ActivityPublisher{
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Record builds an activity event and publishes it.
func (p *ActivityPublisher) Record(ctx context.Context, userID uuid.UUID, activityType string, useCaseID uuid.UUID, value string) {
	activity := models.Activity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		Type:       activityType,
		Value:      value,
	}
	if useCaseID != uuid.Nil {
		activity.UseCaseID = useCaseID.String()
	}

	p.afterCommit(ctx, func() { p.publish(ctx, activity) })
}

func (p *ActivityPublisher) publish(ctx context.Context, activity models.Activity) {
	if p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "activity_id", activity.ActivityID)
		return
	}

	data, err := json.Marshal(activity)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity for Kafka", "activity_id", activity.ActivityID, "error", err)
		return
	}

	// keyed by user so one user's actions stay ordered within a partition
	msg := kafka.Message{
		Key:   []byte(activity.UserID),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity to Kafka", "activity_id", activity.ActivityID, "error", err)
	} else {
		logger.Log.Infow("Activity published to Kafka", "activity_id", activity.ActivityID, "type", activity.Type)
	}
}
