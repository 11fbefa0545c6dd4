package stream

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"

	"emonitor-backend/internal/db"
)

func Test_Publish(t *testing.T) {
	reading := db.SensorReading{
		ID:          1,
		Temperature: 21.5,
		CO2:         400,
		TVOC:        12,
		LightLevel:  250,
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name        string
		setupWriter func() Writer
		expectedErr error
	}{
		{
			name: "valid reading",
			setupWriter: func() Writer {
				value, _ := json.Marshal(reading)
				w := NewMockWriter(t)
				w.EXPECT().WriteMessages(
					mock.Anything,
					[]kafka.Message{
						{
							Key:   []byte(reading.Timestamp.UTC().Format(time.RFC3339Nano)),
							Value: value,
						},
					},
				).Return(nil)
				return w
			},
			expectedErr: nil,
		},
		{
			name: "writer failed",
			setupWriter: func() Writer {
				w := NewMockWriter(t)
				w.EXPECT().WriteMessages(
					mock.Anything,
					mock.Anything,
				).Return(errors.New("failed to write"))
				return w
			},
			expectedErr: ErrWriteMessage,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &Publisher{
				writer: tt.setupWriter(),
			}
			err := publisher.Publish(context.Background(), reading)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
