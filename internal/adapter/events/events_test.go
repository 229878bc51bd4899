package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetcast/internal/core/port"
)

func startTestNATS(t *testing.T) string {
	t.Helper()
	srv, err := natsserver.NewServer(&natsserver.Options{Host: "127.0.0.1", Port: -1})
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(srv.Shutdown)
	require.True(t, srv.ReadyForConnections(5*time.Second), "embedded NATS not ready")
	return srv.ClientURL()
}

func TestNewWithoutURLIsNoop(t *testing.T) {
	pub, err := New("")
	require.NoError(t, err)
	assert.IsType(t, &NoopPublisher{}, pub)
	assert.NoError(t, pub.Publish(context.Background(), "streetcast.device.heartbeat", port.DeviceHeartbeat{}))
	assert.NoError(t, pub.Close())
}

func TestNewUnreachable(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1", nats.Timeout(200*time.Millisecond), nats.MaxReconnects(0))
	assert.Error(t, err)
}

func TestNATSPublisherPublish(t *testing.T) {
	url := startTestNATS(t)

	pub, err := New(url)
	require.NoError(t, err)
	defer pub.Close()

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe("streetcast.impression.>", ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	shownAt := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	event := port.ImpressionRecorded{ImpressionID: "imp_1", DeviceID: "d1", CreativeID: "c1", ShownAt: shownAt}
	require.NoError(t, pub.Publish(context.Background(), "streetcast."+port.SubjectImpressionRecorded, event))

	select {
	case msg := <-ch:
		assert.Equal(t, "streetcast.impression.recorded", msg.Subject)
		var got port.ImpressionRecorded
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "imp_1", got.ImpressionID)
		assert.True(t, shownAt.Equal(got.ShownAt))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestNATSPublisherRejectsUnencodable(t *testing.T) {
	url := startTestNATS(t)
	pub, err := NewNATSPublisher(url)
	require.NoError(t, err)
	defer pub.Close()

	err = pub.Publish(context.Background(), "streetcast.bad", make(chan int))
	assert.Error(t, err)
}

func TestNATSPublisherCloseFlushesBuffered(t *testing.T) {
	url := startTestNATS(t)

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()
	ch := make(chan *nats.Msg, 1000)
	sub, err := nc.ChanSubscribe("streetcast.device.heartbeat", ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	pub, err := NewNATSPublisher(url)
	require.NoError(t, err)
	const n = 500
	for i := 0; i < n; i++ {
		require.NoError(t, pub.Publish(context.Background(), "streetcast.device.heartbeat",
			port.DeviceHeartbeat{DeviceID: fmt.Sprintf("d%d", i)}))
	}
	// no explicit flush: Close must deliver what is still buffered
	require.NoError(t, pub.Close())
	assert.True(t, pub.conn.IsClosed())

	deadline := time.After(5 * time.Second)
	for got := 0; got < n; got++ {
		select {
		case <-ch:
		case <-deadline:
			t.Fatalf("received %d of %d events after Close", got, n)
		}
	}
}
