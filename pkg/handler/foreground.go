package handler

import (
	"context"
	"time"

	"github.com/unhooked-app/craving-intervention/pkg/common"
	"github.com/unhooked-app/craving-intervention/pkg/enforcement"
	pb "github.com/unhooked-app/craving-intervention/pkg/pb/craving/v1"
)

// ForegroundActivity receives foreground-change events from device agents
// and feeds them to the enforcement monitor.
type ForegroundActivity struct {
	pb.UnimplementedForegroundActivityServiceServer

	monitor *enforcement.Monitor
}

// NewForegroundActivity creates a new foreground event listener.
func NewForegroundActivity(monitor *enforcement.Monitor) *ForegroundActivity {
	return &ForegroundActivity{
		monitor: monitor,
	}
}

// OnForegroundAppChanged handles one foreground-change event. The monitor
// never fails an event, so this only errs on transport-level problems.
func (s *ForegroundActivity) OnForegroundAppChanged(
	ctx context.Context,
	msg *pb.ForegroundAppChanged,
) (*pb.ForegroundAppChangedResponse, error) {
	scope := common.GetScopeFromContext(ctx, "ForegroundActivity.OnForegroundAppChanged")
	defer scope.Finish()
	scope.AddBaggage("userId", msg.GetUserId())

	ev := enforcement.Event{
		UserID:   msg.GetUserId(),
		AppID:    msg.GetAppId(),
		DeviceID: msg.GetDeviceId(),
	}
	if ms := msg.GetOccurredAtMillis(); ms > 0 {
		ev.OccurredAt = time.UnixMilli(ms)
	}

	out := s.monitor.HandleForegroundEvent(ctx, ev)
	if out.Redirected {
		scope.TraceEvent("redirected away from blocked app")
	}

	return &pb.ForegroundAppChangedResponse{
		Redirected:   out.Redirected,
		BlockedAppId: out.BlockedAppID,
	}, nil
}
