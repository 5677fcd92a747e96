package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/unhooked-app/craving-intervention/pkg/pb/craving/v1"
)

func TestStartTimer(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	state, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	if !state.GetIsRunning() {
		t.Error("timer should be running after StartTimer")
	}
	if state.GetStartTimeMillis() == 0 {
		t.Error("StartTimeMillis should be set after StartTimer")
	}
	if state.GetUserId() != "user-1" {
		t.Errorf("UserId = %q, expected user-1", state.GetUserId())
	}
}

func TestStartTimer_Unauthenticated(t *testing.T) {
	stack := setupTestStack(t)

	_, err := stack.intervention.StartTimer(context.Background(), &pb.StartTimerRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("StartTimer() code = %v, expected Unauthenticated", status.Code(err))
	}
}

func TestStopTimer_KeepsStart(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	started, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	stopped, err := stack.intervention.StopTimer(ctx, &pb.StopTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("StopTimer() error = %v", err)
	}

	if stopped.GetIsRunning() {
		t.Error("timer should not be running after StopTimer")
	}
	if stopped.GetStartTimeMillis() != started.GetStartTimeMillis() {
		t.Errorf("StopTimer changed the start instant: %d -> %d",
			started.GetStartTimeMillis(), stopped.GetStartTimeMillis())
	}
}

func TestResetTimer_ClearsStart(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	state, err := stack.intervention.ResetTimer(ctx, &pb.ResetTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("ResetTimer() error = %v", err)
	}

	if state.GetIsRunning() {
		t.Error("timer should not be running after ResetTimer")
	}
	if state.GetStartTimeMillis() != 0 {
		t.Error("ResetTimer must clear the start instant")
	}
}

func TestGetTimer_NewUser(t *testing.T) {
	stack := setupTestStack(t)

	state, err := stack.intervention.GetTimer(context.Background(), &pb.GetTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}

	if state.GetIsRunning() || state.GetStartTimeMillis() != 0 || state.GetElapsedMillis() != 0 {
		t.Errorf("new user timer state = %v, expected zero state", state)
	}
}

func TestActivate_RequiresRunningTimer(t *testing.T) {
	stack := setupTestStack(t)

	_, err := stack.intervention.Activate(context.Background(), &pb.ActivateRequest{UserId: "user-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("Activate() code = %v, expected FailedPrecondition", status.Code(err))
	}
}

func TestActivateDeactivate(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	resp, err := stack.intervention.Activate(ctx, &pb.ActivateRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !resp.GetActive() {
		t.Error("Activate() should report active")
	}

	// Repeated activation is a no-op.
	if _, err := stack.intervention.Activate(ctx, &pb.ActivateRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("second Activate() error = %v", err)
	}

	deResp, err := stack.intervention.Deactivate(ctx, &pb.DeactivateRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if deResp.GetActive() {
		t.Error("Deactivate() should report idle")
	}
}

func TestRecordRelapse_FullCycle(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	resp, err := stack.intervention.RecordRelapse(ctx, &pb.RecordRelapseRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("RecordRelapse() error = %v", err)
	}

	if !resp.GetRecorded() {
		t.Fatal("RecordRelapse() should record a period for a running timer")
	}
	period := resp.GetPeriod()
	if period == nil {
		t.Fatal("RecordRelapse() returned no period")
	}
	if period.GetDurationMillis() != period.GetEndTimeMillis()-period.GetStartTimeMillis() {
		t.Errorf("duration %d does not match end-start (%d)",
			period.GetDurationMillis(), period.GetEndTimeMillis()-period.GetStartTimeMillis())
	}

	// The timer is reset afterwards.
	state, err := stack.intervention.GetTimer(ctx, &pb.GetTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}
	if state.GetIsRunning() || state.GetStartTimeMillis() != 0 {
		t.Error("timer must be reset after a relapse")
	}

	// And the period shows up in the list.
	list, err := stack.intervention.ListPeriods(ctx, &pb.ListPeriodsRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("ListPeriods() error = %v", err)
	}
	if len(list.GetPeriods()) != 1 || list.GetPeriods()[0].GetId() != period.GetId() {
		t.Errorf("ListPeriods() = %v, expected the recorded period", list.GetPeriods())
	}
}

func TestRecordRelapse_NoTimer(t *testing.T) {
	stack := setupTestStack(t)

	resp, err := stack.intervention.RecordRelapse(context.Background(), &pb.RecordRelapseRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("RecordRelapse() error = %v", err)
	}
	if resp.GetRecorded() {
		t.Error("RecordRelapse() without a timer must not record a period")
	}
	if resp.GetPeriod() != nil {
		t.Errorf("RecordRelapse() returned period %v, expected none", resp.GetPeriod())
	}
}

func TestRecordOvercome(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	resp, err := stack.intervention.RecordOvercome(ctx, &pb.RecordOvercomeRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("RecordOvercome() error = %v", err)
	}
	if resp.GetOvercomeCount() != 1 {
		t.Errorf("OvercomeCount = %d, expected 1", resp.GetOvercomeCount())
	}

	// The timer keeps running.
	state, err := stack.intervention.GetTimer(ctx, &pb.GetTimerRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("GetTimer() error = %v", err)
	}
	if !state.GetIsRunning() {
		t.Error("overcome must leave the timer running")
	}
}

func TestBlockedApps_RoundTrip(t *testing.T) {
	stack := setupTestStack(t)
	ctx := context.Background()

	set, err := stack.intervention.SetBlockedApps(ctx, &pb.SetBlockedAppsRequest{
		UserId: "user-1",
		AppIds: []string{"com.example.doom", "com.example.scroll"},
	})
	if err != nil {
		t.Fatalf("SetBlockedApps() error = %v", err)
	}
	if len(set.GetAppIds()) != 2 {
		t.Errorf("SetBlockedApps() returned %d apps, expected 2", len(set.GetAppIds()))
	}

	got, err := stack.intervention.GetBlockedApps(ctx, &pb.GetBlockedAppsRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("GetBlockedApps() error = %v", err)
	}
	if len(got.GetAppIds()) != 2 {
		t.Errorf("GetBlockedApps() returned %d apps, expected 2", len(got.GetAppIds()))
	}
}

// watchStream is a minimal InterventionService_WatchTimerServer for testing
// the streaming handler without a network.
type watchStream struct {
	grpc.ServerStream
	ctx context.Context

	mu   sync.Mutex
	sent []*pb.ElapsedTick
}

func (s *watchStream) Context() context.Context { return s.ctx }

func (s *watchStream) Send(tick *pb.ElapsedTick) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, tick)
	return nil
}

func (s *watchStream) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *watchStream) first() *pb.ElapsedTick {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return nil
	}
	return s.sent[0]
}

func TestWatchTimer_NoRunningTimer(t *testing.T) {
	stack := setupTestStack(t)
	stream := &watchStream{ctx: context.Background()}

	if err := stack.intervention.WatchTimer(&pb.WatchTimerRequest{UserId: "user-1"}, stream); err != nil {
		t.Fatalf("WatchTimer() error = %v", err)
	}

	if stream.count() != 1 {
		t.Fatalf("WatchTimer() sent %d ticks, expected 1 stopped tick", stream.count())
	}
	if stream.first().GetIsRunning() {
		t.Error("stopped tick should report IsRunning=false")
	}
}

func TestWatchTimer_StreamsTicks(t *testing.T) {
	stack := setupTestStack(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := stack.intervention.StartTimer(ctx, &pb.StartTimerRequest{UserId: "user-1"}); err != nil {
		t.Fatalf("StartTimer() error = %v", err)
	}

	stream := &watchStream{ctx: ctx}
	done := make(chan error, 1)
	go func() {
		done <- stack.intervention.WatchTimer(&pb.WatchTimerRequest{UserId: "user-1"}, stream)
	}()

	deadline := time.After(2 * time.Second)
	for stream.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("no tick streamed within 2s")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if !stream.first().GetIsRunning() {
		t.Error("streamed tick should report IsRunning=true")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("WatchTimer() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WatchTimer did not return after context cancellation")
	}
}
