package scheduler

import (
	"context"
	"fmt"
	"time"

	"parcelbook/logger"

	"github.com/go-co-op/gocron"
)

// Sweeper moves Incoming bookings created before cutoff to Pending.
type Sweeper interface {
	SweepIncoming(ctx context.Context, cutoff time.Time) (int64, error)
}

// LastCutoff returns the most recent hour:minute instant in loc that is not after now.
func LastCutoff(now time.Time, loc *time.Location, hour, minute int) time.Time {
	local := now.In(loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if cutoff.After(local) {
		cutoff = time.Date(local.Year(), local.Month(), local.Day()-1, hour, minute, 0, 0, loc)
	}
	return cutoff
}

// SweepJob runs one pass of the Incoming to Pending sweep.
type SweepJob struct {
	Sweeper  Sweeper
	Location *time.Location
	Hour     int
	Minute   int
	Now      func() time.Time
}

func (j *SweepJob) Run(ctx context.Context) {
	cutoff := LastCutoff(j.Now(), j.Location, j.Hour, j.Minute)
	n, err := j.Sweeper.SweepIncoming(ctx, cutoff)
	if err != nil {
		logger.Error("incoming sweep failed", err)
		return
	}
	if n > 0 {
		logger.Info(fmt.Sprintf("marked %d incoming bookings as pending (cutoff %s)", n, cutoff.Format(time.RFC3339)))
	}
}

// Start schedules the sweep every minute in the job's location. A run still in progress
// makes the next tick skip.
func Start(ctx context.Context, job *SweepJob) (*gocron.Scheduler, error) {
	s := gocron.NewScheduler(job.Location)
	s.SingletonModeAll()
	if _, err := s.Every(1).Minute().Do(job.Run, ctx); err != nil {
		return nil, err
	}
	s.StartAsync()
	return s, nil
}
