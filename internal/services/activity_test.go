package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityPublisher_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewActivityPublisher(mockKafka)

	userID, useCaseID := uuid.New(), uuid.New()

	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte(userID.String()), msgs[0].Key)

			var activity models.Activity
			require.NoError(t, json.Unmarshal(msgs[0].Value, &activity))
			assert.NotEmpty(t, activity.ActivityID)
			assert.NotZero(t, activity.Timestamp)
			assert.Equal(t, userID.String(), activity.UserID)
			assert.Equal(t, models.ActivityEvaluationSubmitted, activity.Type)
			assert.Equal(t, useCaseID.String(), activity.UseCaseID)
			assert.Equal(t, "HIGH", activity.Value)
			return nil
		})

	publisher.Record(context.Background(), userID, models.ActivityEvaluationSubmitted, useCaseID, "HIGH")
}

func TestActivityPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewActivityPublisher(mockKafka)

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		publisher.Record(context.Background(), uuid.New(), models.ActivityFavoriteToggled, uuid.New(), "true")
	})
}

func TestActivityPublisher_NilWriter(t *testing.T) {
	publisher := services.NewActivityPublisher(nil)

	assert.NotPanics(t, func() {
		publisher.Record(context.Background(), uuid.New(), models.ActivityEvaluationDeleted, uuid.Nil, "")
	})
}

func TestActivityPublisher_WithAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := services.NewMockKafkaWriter(ctrl)

	var deferred []func()
	publisher := services.NewActivityPublisher(mockKafka, services.WithAfterCommit(func(_ context.Context, fn func()) {
		deferred = append(deferred, fn)
	}))

	// nothing reaches Kafka until the deferred call runs
	publisher.Record(context.Background(), uuid.New(), models.ActivityFavoriteToggled, uuid.New(), "true")
	require.Len(t, deferred, 1)

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	deferred[0]()
}
