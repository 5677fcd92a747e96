package enforcement

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

// publishWhenSubscribed publishes the payload once the subscriber is
// listening on the channel.
func publishWhenSubscribed(t *testing.T, client *redis.Client, channel, payload string) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		n, err := client.Publish(context.Background(), channel, payload).Result()
		if err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		if n > 0 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("subscriber never attached to channel")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSubscriber_DeliversEventsToMonitor(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	checker := &fakeChecker{active: true, apps: map[string]bool{"com.example.doom": true}}
	redirector := &captureRedirector{}
	monitor := NewMonitor(checker, redirector, nil)
	sub := NewSubscriber(client, monitor, "test:events")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := sub.Run(ctx); err != nil {
			t.Errorf("Run() error = %v", err)
		}
	}()

	payload, _ := json.Marshal(wireEvent{
		UserID:           "user-1",
		AppID:            "com.example.doom",
		DeviceID:         "device-1",
		OccurredAtMillis: time.Now().UnixMilli(),
	})
	publishWhenSubscribed(t, client, "test:events", string(payload))

	deadline := time.After(2 * time.Second)
	for redirector.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("published event never reached the monitor")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop on context cancellation")
	}
}

func TestSubscriber_DropsMalformedPayload(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	checker := &fakeChecker{active: true, apps: map[string]bool{"com.example.doom": true}}
	redirector := &captureRedirector{}
	monitor := NewMonitor(checker, redirector, nil)
	sub := NewSubscriber(client, monitor, "test:events")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sub.Run(ctx)
	}()

	publishWhenSubscribed(t, client, "test:events", "{not json")

	// A malformed payload must not kill the subscriber: a valid event
	// published afterwards still gets through.
	payload, _ := json.Marshal(wireEvent{UserID: "user-1", AppID: "com.example.doom"})
	publishWhenSubscribed(t, client, "test:events", string(payload))

	deadline := time.After(2 * time.Second)
	for redirector.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("valid event after malformed payload never reached the monitor")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-done
}

func TestRedisRedirector_PublishesToUserChannel(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()

	ctx := context.Background()
	sub := client.Subscribe(ctx, RedirectChannel("user-1"))
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	redirector := NewRedisRedirector(client)
	action := RedirectAction{
		UserID:       "user-1",
		BlockedAppID: "com.example.doom",
		DeviceID:     "device-1",
		IssuedAt:     time.Now(),
	}
	if err := redirector.Redirect(ctx, action); err != nil {
		t.Fatalf("Redirect() error = %v", err)
	}

	select {
	case msg := <-sub.Channel():
		var got RedirectAction
		if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
			t.Fatalf("failed to unmarshal redirect payload: %v", err)
		}
		if got.BlockedAppID != "com.example.doom" {
			t.Errorf("BlockedAppID = %q, expected com.example.doom", got.BlockedAppID)
		}
		if got.UserID != "user-1" {
			t.Errorf("UserID = %q, expected user-1", got.UserID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no redirect action received on user channel")
	}
}
