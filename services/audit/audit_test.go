package audit

import (
	"sync"
	"testing"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
)

type memSink struct {
	mu   sync.Mutex
	rows []models.AuditLog

	block chan struct{}
}

func (s *memSink) Write(l models.AuditLog) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, l)
	return nil
}

func (s *memSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func TestAsyncServiceWritesEntries(t *testing.T) {
	sink := &memSink{}
	svc := NewAsyncServiceWithSink(sink, logger.NewDefaultLogger(logger.ErrorLevel), 8)

	svc.Record(Entry{
		Action:      "allocate",
		Module:      "hostel",
		Description: "Allocated student STU00001 to room 101",
		PerformedBy: 1,
		TargetID:    1,
		TargetModel: "Student",
		Changes:     map[string]interface{}{"roomId": 10},
	})
	svc.Record(Entry{Action: "collect", Module: "fee", TargetID: 2})
	svc.Close()

	if got := sink.count(); got != 2 {
		t.Fatalf("wrote %d rows, want 2", got)
	}

	row := sink.rows[0]
	if row.Action != "allocate" || row.Module != "hostel" {
		t.Errorf("row = %s/%s, want hostel/allocate", row.Module, row.Action)
	}
	if len(row.Changes) == 0 {
		t.Error("changes not marshalled")
	}
}

func TestAsyncServiceDropsWhenFull(t *testing.T) {
	sink := &memSink{block: make(chan struct{})}
	svc := NewAsyncServiceWithSink(sink, logger.NewDefaultLogger(logger.ErrorLevel), 1)

	// First entry is picked up by the writer and parks on the sink; the
	// second fills the buffer; everything after that must be dropped, not
	// block the caller.
	for i := 0; i < 10; i++ {
		svc.Record(Entry{Action: "update", Module: "student", TargetID: uint(i)})
	}

	close(sink.block)
	svc.Close()

	if got := sink.count(); got > 2 {
		t.Errorf("wrote %d rows, want at most 2", got)
	}
	if got := sink.count(); got == 0 {
		t.Error("expected at least one row written")
	}
}
