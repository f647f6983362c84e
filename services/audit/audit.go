package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
)

// Entry is what a mutating operation submits for traceability.
type Entry struct {
	Action      string
	Module      string
	Description string
	PerformedBy uint
	TargetID    uint
	TargetModel string
	Changes     interface{}
}

// Service records audit entries. Recording is best-effort: a failure is
// logged to the process log and never surfaced to the caller.
type Service interface {
	Record(e Entry)
	Close()
}

// Sink persists a single audit row.
type Sink interface {
	Write(l models.AuditLog) error
}

type gormSink struct {
	db *gorm.DB
}

func (s *gormSink) Write(l models.AuditLog) error {
	return s.db.Create(&l).Error
}

// AsyncService queues entries on a buffered channel and writes them from a
// single background goroutine, decoupled from the primary operation.
type AsyncService struct {
	sink Sink
	log  logger.Logger

	queue chan models.AuditLog
	done  chan struct{}
}

const defaultBuffer = 256

// NewAsyncService builds an AsyncService over the database.
func NewAsyncService(db *gorm.DB, log logger.Logger) *AsyncService {
	return NewAsyncServiceWithSink(&gormSink{db: db}, log, defaultBuffer)
}

// NewAsyncServiceWithSink builds an AsyncService with a custom sink and
// buffer size.
func NewAsyncServiceWithSink(sink Sink, log logger.Logger, buffer int) *AsyncService {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	s := &AsyncService{
		sink:  sink,
		log:   log,
		queue: make(chan models.AuditLog, buffer),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Record enqueues an entry. When the buffer is full the entry is dropped.
func (s *AsyncService) Record(e Entry) {
	row := models.AuditLog{
		Action:      e.Action,
		Module:      e.Module,
		Description: e.Description,
		PerformedBy: e.PerformedBy,
		TargetID:    e.TargetID,
		TargetModel: e.TargetModel,
	}
	if e.Changes != nil {
		if b, err := json.Marshal(e.Changes); err == nil {
			row.Changes = b
		} else {
			s.log.Error("audit: could not marshal changes for %s/%s: %v", e.Module, e.Action, err)
		}
	}

	select {
	case s.queue <- row:
	default:
		s.log.Error("audit: queue full, dropping %s/%s entry for target %d", e.Module, e.Action, e.TargetID)
	}
}

// Close drains the queue and stops the writer goroutine.
func (s *AsyncService) Close() {
	close(s.queue)
	<-s.done
}

func (s *AsyncService) run() {
	defer close(s.done)
	for row := range s.queue {
		if err := s.sink.Write(row); err != nil {
			s.log.Error("audit: failed to write %s/%s entry: %v", row.Module, row.Action, err)
		}
	}
}
