package handler

import (
	"context"
	"testing"
	"time"

	pb "github.com/unhooked-app/craving-intervention/pkg/pb/craving/v1"
)

func TestOnForegroundAppChanged_RedirectsWhileArmed(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.SetBlockedApps(ctx, &pb.SetBlockedAppsRequest{
		UserId: "user-1",
		AppIds: []string{"com.example.doom"},
	}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}
	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}
	if _, err := stack.intervention.Activate(ctx, &pb.ActivateRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	resp, err := stack.foreground.OnForegroundAppChanged(ctx, &pb.ForegroundAppChanged{
		UserId:           "user-1",
		AppId:            "com.example.doom",
		DeviceId:         "device-1",
		OccurredAtMillis: time.Now().UnixMilli(),
	})
	if err != nil {
		t.Fatalf("OnForegroundAppChanged() error = %v", err)
	}

	if !resp.GetRedirected() {
		t.Error("blocked app while armed should redirect")
	}
	if resp.GetBlockedAppId() != "com.example.doom" {
		t.Errorf("BlockedAppId = %q, expected com.example.doom", resp.GetBlockedAppId())
	}
}

func TestOnForegroundAppChanged_IdleIgnores(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.SetBlockedApps(ctx, &pb.SetBlockedAppsRequest{
		UserId: "user-1",
		AppIds: []string{"com.example.doom"},
	}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}

	resp, err := stack.foreground.OnForegroundAppChanged(ctx, &pb.ForegroundAppChanged{
		UserId: "user-1",
		AppId:  "com.example.doom",
	})
	if err != nil {
		t.Fatalf("OnForegroundAppChanged() error = %v", err)
	}
	if resp.GetRedirected() {
		t.Error("idle enforcement must ignore blocked apps")
	}
}

func TestOnForegroundAppChanged_EmptyEvent(t *testing.T) {
	stack := setupTestStack(t)

	resp, err := stack.foreground.OnForegroundAppChanged(context.Background(), &pb.ForegroundAppChanged{})
	if err != nil {
		t.Fatalf("OnForegroundAppChanged() error = %v", err)
	}
	if resp.GetRedirected() {
		t.Error("unresolvable event must be ignored, not redirected")
	}
}

func TestOnForegroundAppChanged_HostAppIgnored(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.SetBlockedApps(ctx, &pb.SetBlockedAppsRequest{
		UserId: "user-1",
		AppIds: []string{"app.unhooked.android"},
	}); err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}
	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}
	if _, err := stack.intervention.Activate(ctx, &pb.ActivateRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	resp, err := stack.foreground.OnForegroundAppChanged(ctx, &pb.ForegroundAppChanged{
		UserId: "user-1",
		AppId:  "app.unhooked.android",
	})
	if err != nil {
		t.Fatalf("OnForegroundAppChanged() error = %v", err)
	}
	if resp.GetRedirected() {
		t.Error("the host app must never be redirected away from")
	}
}
