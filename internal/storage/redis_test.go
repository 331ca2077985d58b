package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fila/internal/config"
	"fila/internal/events"
	"fila/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	logger, _ := test.NewNullLogger()
	ctx := context.Background()

	client, err := NewRedisClient(ctx, config.Redis{Addr: mr.Addr()}, logger)
	require.NoError(t, err)
	defer client.Close()

	sub := client.Subscribe(ctx, "fila:eventos")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewRedisPublisher(client, "fila:eventos")
	err = pub.Publish(ctx, events.Event{
		Type:     events.CustomerJoined,
		Revision: 4,
		Name:     "Ana",
		Position: 2,
		Class:    models.Priority,
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "customer_joined", got["event_type"])
		assert.Equal(t, "Ana", got["nome"])
		assert.Equal(t, "P", got["tipo_atendimento"])
		assert.EqualValues(t, 4, got["revisao"])
	case <-time.After(2 * time.Second):
		t.Fatal("no message received on redis channel")
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	logger, _ := test.NewNullLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, config.Redis{Addr: addr}, logger)
	assert.Error(t, err)
}

func TestRedisPublisher_ClosedClient(t *testing.T) {
	mr := miniredis.RunT(t)
	logger, _ := test.NewNullLogger()

	client, err := NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()}, logger)
	require.NoError(t, err)
	client.Close()

	err = NewRedisPublisher(client, "fila:eventos").Publish(context.Background(), events.Event{Type: events.AdvancedEmpty})
	assert.Error(t, err)
}
