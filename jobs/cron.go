package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// HostelReconciler re-derives hostel room counts from the rooms table.
type HostelReconciler interface {
	ReconcileAllCounts(ctx context.Context) error
}

// FeeOverdueMarker flags pending fees past their due date.
type FeeOverdueMarker interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

var (
	hostelReconciler HostelReconciler
	feeOverdueMarker FeeOverdueMarker
)

// SetHostelReconciler sets the implementation used by the nightly job.
func SetHostelReconciler(r HostelReconciler) {
	hostelReconciler = r
}

// SetFeeOverdueMarker sets the implementation used by the nightly job.
func SetFeeOverdueMarker(m FeeOverdueMarker) {
	feeOverdueMarker = m
}

// InitCronJobs registers the nightly maintenance jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Reconcile hostel room counts at 02:00 every day.
	_, err := c.AddFunc("0 2 * * *", func() {
		if hostelReconciler == nil {
			log.Printf("hostel reconciler is not set")
			return
		}
		if err := hostelReconciler.ReconcileAllCounts(context.Background()); err != nil {
			log.Printf("hostel count reconciliation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// Flag overdue fees at 03:00 every day.
	_, err = c.AddFunc("0 3 * * *", func() {
		if feeOverdueMarker == nil {
			log.Printf("fee overdue marker is not set")
			return
		}
		flagged, err := feeOverdueMarker.MarkOverdue(context.Background(), time.Now())
		if err != nil {
			log.Printf("overdue fee marking failed: %v", err)
			return
		}
		if flagged > 0 && m != nil {
			msg := fmt.Sprintf(`{"event":"fees_overdue","count":%d}`, flagged)
			if err := m.Broadcast([]byte(msg)); err != nil {
				log.Printf("overdue fee broadcast failed: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
