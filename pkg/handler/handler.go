package handler

import (
	pb "github.com/unhooked-app/craving-intervention/pkg/pb/craving/v1"
	"github.com/unhooked-app/craving-intervention/pkg/profile"
)

const (
	// DefaultPeriodListLimit caps ListPeriods when the client sends no limit.
	DefaultPeriodListLimit = 50
)

func timerStateToProto(userID string, state *profile.TimerState, elapsedMillis int64) *pb.TimerState {
	ts := &pb.TimerState{
		UserId:        userID,
		IsRunning:     state.IsRunning,
		ElapsedMillis: elapsedMillis,
	}
	if state.HasStart() {
		ts.StartTimeMillis = state.StartTime.UnixMilli()
	}
	if !state.LastUpdated.IsZero() {
		ts.LastUpdatedMillis = state.LastUpdated.UnixMilli()
	}
	return ts
}

func periodToProto(p *profile.BingeFreePeriod) *pb.BingeFreePeriod {
	return &pb.BingeFreePeriod{
		Id:              p.ID,
		StartTimeMillis: p.StartTime.UnixMilli(),
		EndTimeMillis:   p.EndTime.UnixMilli(),
		DurationMillis:  p.DurationMillis,
		CreatedAtMillis: p.CreatedAt.UnixMilli(),
	}
}
