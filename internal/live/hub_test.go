package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emonitor-backend/internal/db"
)

func reading(temp float64) db.SensorReading {
	return db.SensorReading{
		Temperature: temp,
		CO2:         400,
		TVOC:        10,
		LightLevel:  250,
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func Test_SubscriberReceivesInOrder(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	hub.Publish(reading(1))
	hub.Publish(reading(2))
	hub.Publish(reading(3))

	for i, want := range []float64{1, 2, 3} {
		select {
		case got := <-sub.C:
			assert.Equal(t, want, got.Temperature, "reading %d", i)
		default:
			t.Fatalf("expected reading %d buffered", i)
		}
	}
}

func Test_LateSubscriberReceivesNothing(t *testing.T) {
	hub := NewHub()
	hub.Publish(reading(1))

	sub := hub.Subscribe()
	defer sub.Close()

	select {
	case r := <-sub.C:
		t.Fatalf("late subscriber got retroactive reading: %+v", r)
	default:
	}
}

func Test_FanOutToMultipleSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()
	defer a.Close()
	defer b.Close()

	require.Equal(t, 2, hub.Count())

	hub.Publish(reading(7))

	for _, sub := range []*Subscription{a, b} {
		select {
		case got := <-sub.C:
			assert.Equal(t, 7.0, got.Temperature)
		default:
			t.Fatal("expected every subscriber to receive the reading")
		}
	}
}

func Test_CloseUnregisters(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	sub.Close()
	assert.Equal(t, 0, hub.Count())

	// Publish after close must not panic and must not deliver.
	hub.Publish(reading(5))

	_, open := <-sub.C
	assert.False(t, open)

	// Double close is safe.
	sub.Close()
}

func Test_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	slow := hub.Subscribe()

	// Fill the subscriber's buffer without draining it; the overflow
	// publish drops it from the hub.
	for i := 0; i <= subscriberBuffer; i++ {
		hub.Publish(reading(float64(i)))
	}

	assert.Equal(t, 0, hub.Count())

	// The dropped subscriber's channel still drains its buffer, then closes.
	received := 0
	for range slow.C {
		received++
	}
	assert.Equal(t, subscriberBuffer, received)

	// The hub keeps working for new subscribers.
	fresh := hub.Subscribe()
	defer fresh.Close()
	hub.Publish(reading(42))
	select {
	case got := <-fresh.C:
		assert.Equal(t, 42.0, got.Temperature)
	default:
		t.Fatal("expected delivery to remaining subscriber")
	}
}
