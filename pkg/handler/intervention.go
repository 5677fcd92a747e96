package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/unhooked-app/craving-intervention/pkg/blocklist"
	"github.com/unhooked-app/craving-intervention/pkg/common"
	"github.com/unhooked-app/craving-intervention/pkg/enforcement"
	"github.com/unhooked-app/craving-intervention/pkg/ledger"
	pb "github.com/unhooked-app/craving-intervention/pkg/pb/craving/v1"
	"github.com/unhooked-app/craving-intervention/pkg/timer"
)

// Intervention is the UI-facing API: session timer control, enforcement
// activation, the binge-free ledger, and blocked-app management.
type Intervention struct {
	pb.UnimplementedInterventionServiceServer

	timers     *timer.Service
	controller *enforcement.Controller
	ledger     *ledger.Service
	blocklist  *blocklist.Store
}

// NewIntervention creates the intervention API handler.
func NewIntervention(
	timers *timer.Service,
	controller *enforcement.Controller,
	ledgerSvc *ledger.Service,
	blocklistStore *blocklist.Store,
) *Intervention {
	return &Intervention{
		timers:     timers,
		controller: controller,
		ledger:     ledgerSvc,
		blocklist:  blocklistStore,
	}
}

// StartTimer begins a new craving-resistance attempt.
func (s *Intervention) StartTimer(ctx context.Context, req *pb.StartTimerRequest) (*pb.TimerState, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.StartTimer")
	defer scope.Finish()

	userID := req.GetUserId()
	if err := s.timers.Start(ctx, userID); err != nil {
		if errors.Is(err, timer.ErrNotAuthenticated) {
			return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
		}
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to start timer: %v", err)
	}

	return s.currentState(ctx, scope, userID)
}

// StopTimer halts the running timer, keeping the recorded start instant.
func (s *Intervention) StopTimer(ctx context.Context, req *pb.StopTimerRequest) (*pb.TimerState, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.StopTimer")
	defer scope.Finish()

	userID := req.GetUserId()
	if err := s.timers.Stop(ctx, userID); err != nil {
		if errors.Is(err, timer.ErrNotAuthenticated) {
			return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
		}
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to stop timer: %v", err)
	}

	return s.currentState(ctx, scope, userID)
}

// ResetTimer clears the start instant and stops the timer.
func (s *Intervention) ResetTimer(ctx context.Context, req *pb.ResetTimerRequest) (*pb.TimerState, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.ResetTimer")
	defer scope.Finish()

	userID := req.GetUserId()
	if err := s.timers.Reset(ctx, userID); err != nil {
		if errors.Is(err, timer.ErrNotAuthenticated) {
			return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
		}
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to reset timer: %v", err)
	}

	return s.currentState(ctx, scope, userID)
}

// GetTimer returns the persisted timer state with the derived elapsed time.
// Called on every app load; it also resumes the local recomputation loop for
// a timer that survived a restart.
func (s *Intervention) GetTimer(ctx context.Context, req *pb.GetTimerRequest) (*pb.TimerState, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.GetTimer")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	if err := s.timers.ResumeOnLoad(ctx, userID); err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to resume timer: %v", err)
	}

	return s.currentState(ctx, scope, userID)
}

// WatchTimer streams the republished elapsed time until the timer stops or
// the client goes away.
func (s *Intervention) WatchTimer(req *pb.WatchTimerRequest, stream pb.InterventionService_WatchTimerServer) error {
	scope := common.GetScopeFromContext(stream.Context(), "Intervention.WatchTimer")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	if err := s.timers.ResumeOnLoad(stream.Context(), userID); err != nil {
		scope.TraceError(err)
		return status.Errorf(codes.Internal, "failed to resume timer: %v", err)
	}

	ticks, detach := s.timers.Watch(userID)
	if ticks == nil {
		// No running timer: report a single stopped tick and end the stream.
		return stream.Send(&pb.ElapsedTick{ElapsedMillis: 0, IsRunning: false})
	}
	defer detach()

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case tick, ok := <-ticks:
			if !ok {
				// Timer stopped or reset while we were watching.
				return stream.Send(&pb.ElapsedTick{ElapsedMillis: 0, IsRunning: false})
			}
			if err := stream.Send(&pb.ElapsedTick{
				ElapsedMillis: tick.ElapsedMillis,
				IsRunning:     tick.IsRunning,
			}); err != nil {
				return err
			}
		}
	}
}

// Activate arms enforcement while the intervention screen is shown. The flag
// is durably set before this returns.
func (s *Intervention) Activate(ctx context.Context, req *pb.ActivateRequest) (*pb.ActivateResponse, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.Activate")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	if err := s.controller.Activate(ctx, userID); err != nil {
		if errors.Is(err, enforcement.ErrTimerNotRunning) {
			return nil, status.Errorf(codes.FailedPrecondition,
				"enforcement requires a running session timer")
		}
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to activate enforcement: %v", err)
	}

	return &pb.ActivateResponse{Active: true}, nil
}

// Deactivate disarms enforcement. Idempotent.
func (s *Intervention) Deactivate(ctx context.Context, req *pb.DeactivateRequest) (*pb.DeactivateResponse, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.Deactivate")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	if err := s.controller.Deactivate(ctx, userID); err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to deactivate enforcement: %v", err)
	}

	return &pb.DeactivateResponse{Active: false}, nil
}

// RecordRelapse closes the current resistance attempt into the ledger and
// resets the timer. recorded=false means there was no timer in progress.
func (s *Intervention) RecordRelapse(ctx context.Context, req *pb.RecordRelapseRequest) (*pb.RecordRelapseResponse, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.RecordRelapse")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	period, err := s.ledger.RecordRelapse(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to record relapse: %v", err)
	}

	resp := &pb.RecordRelapseResponse{Recorded: period != nil}
	if period != nil {
		resp.Period = periodToProto(period)
	}
	return resp, nil
}

// RecordOvercome bumps the overcome counter by exactly one. The timer keeps
// running.
func (s *Intervention) RecordOvercome(ctx context.Context, req *pb.RecordOvercomeRequest) (*pb.RecordOvercomeResponse, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.RecordOvercome")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	count, err := s.ledger.RecordOvercome(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to record overcome: %v", err)
	}

	return &pb.RecordOvercomeResponse{OvercomeCount: count}, nil
}

// ListPeriods returns the most recent binge-free periods, newest first.
func (s *Intervention) ListPeriods(ctx context.Context, req *pb.ListPeriodsRequest) (*pb.ListPeriodsResponse, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.ListPeriods")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = DefaultPeriodListLimit
	}

	periods, err := s.ledger.Latest(ctx, userID, limit)
	if err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to list periods: %v", err)
	}

	resp := &pb.ListPeriodsResponse{
		Periods: make([]*pb.BingeFreePeriod, 0, len(periods)),
	}
	for _, p := range periods {
		resp.Periods = append(resp.Periods, periodToProto(p))
	}
	return resp, nil
}

// GetBlockedApps returns the user's blocked-app list from the local mirror.
func (s *Intervention) GetBlockedApps(ctx context.Context, req *pb.GetBlockedAppsRequest) (*pb.BlockedApps, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.GetBlockedApps")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	appIDs, err := s.blocklist.Get(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to read blocked apps: %v", err)
	}

	return &pb.BlockedApps{AppIds: appIDs}, nil
}

// SetBlockedApps replaces the blocked-app list wholesale: remote store
// first, then the local mirror.
func (s *Intervention) SetBlockedApps(ctx context.Context, req *pb.SetBlockedAppsRequest) (*pb.BlockedApps, error) {
	scope := common.GetScopeFromContext(ctx, "Intervention.SetBlockedApps")
	defer scope.Finish()

	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Errorf(codes.Unauthenticated, "user_id is required")
	}

	if err := s.blocklist.Set(ctx, userID, req.GetAppIds()); err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to set blocked apps: %v", err)
	}

	return &pb.BlockedApps{AppIds: req.GetAppIds()}, nil
}

func (s *Intervention) currentState(ctx context.Context, scope *common.Scope, userID string) (*pb.TimerState, error) {
	state, elapsed, err := s.timers.Snapshot(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		return nil, status.Errorf(codes.Internal, "failed to read timer state: %v", err)
	}
	return timerStateToProto(userID, state, elapsed), nil
}
