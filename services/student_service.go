package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/validator"
)

const studentCounterName = "student_code"

type StudentService struct {
	db     *gorm.DB
	logger logger.Logger
}

type StudentServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewStudentService(opts StudentServiceOptions) *StudentService {
	return &StudentService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// StudentFilter narrows the student list.
type StudentFilter struct {
	Course   string
	Branch   string
	Semester int
	Status   int
	HostelID uint
	Name     string
}

// Create validates the student, issues the next sequential student code
// under a row lock on the counter, and persists the record.
func (s *StudentService) Create(ctx context.Context, student *models.Student) error {
	if err := validator.ValidateStudent(student); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSequence(tx, studentCounterName)
		if err != nil {
			return err
		}
		student.StudentCode = FormatStudentCode(seq)
		if err := tx.Create(student).Error; err != nil {
			return err
		}
		s.logger.Info("created student %s (%s)", student.StudentCode, student.Name)
		return nil
	})
}

// nextSequence bumps a named counter while its row is locked.
func nextSequence(tx *gorm.DB, name string) (int64, error) {
	var counter models.Counter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&counter).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.Counter{Name: name, Seq: 0}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	counter.Seq++
	if err := tx.Model(&models.Counter{}).Where("name = ?", name).
		Update("seq", counter.Seq).Error; err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// FormatStudentCode renders a sequence number as a padded business key.
func FormatStudentCode(seq int64) string {
	return fmt.Sprintf("STU%05d", seq)
}

// GetByID returns a student with hostel and room preloaded.
func (s *StudentService) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).Preload("Hostel").Preload("Room").First(&student, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// GetByCode returns a student by their business key.
func (s *StudentService) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).Preload("Hostel").Preload("Room").
		Where("student_code = ?", code).First(&student).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// List returns a filtered page of students plus the total count.
func (s *StudentService) List(ctx context.Context, filter StudentFilter, page, limit int) ([]models.Student, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Student{})

	if filter.Course != "" {
		query = query.Where("course = ?", filter.Course)
	}
	if filter.Branch != "" {
		query = query.Where("branch = ?", filter.Branch)
	}
	if filter.Semester > 0 {
		query = query.Where("semester = ?", filter.Semester)
	}
	if filter.Status > 0 {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.HostelID > 0 {
		query = query.Where("hostel_id = ?", filter.HostelID)
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []models.Student
	err := query.Preload("Hostel").Preload("Room").
		Order("student_code").
		Offset(page * limit).Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// Update applies field changes; allocation references are owned by the
// allocation service and cannot be edited here.
func (s *StudentService) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Student, error) {
	delete(updates, "id")
	delete(updates, "student_code")
	delete(updates, "studentId")
	delete(updates, "hostel_id")
	delete(updates, "hostelId")
	delete(updates, "room_id")
	delete(updates, "roomId")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(student).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ChangeStatus updates only the lifecycle status.
func (s *StudentService) ChangeStatus(ctx context.Context, id uint, status int) (*models.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Status = status
	if err := student.ValidateStatus(); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Student status is not valid", err)
	}

	if err := s.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student. A student still holding a room must be
// deallocated first.
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student.IsAllocated() {
		return errors.ErrStudentAllocated
	}
	return s.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}

// StudentStats is a grouped count used by the statistics endpoint.
type StudentStats struct {
	Course   string `json:"course,omitempty"`
	Status   int    `json:"status,omitempty"`
	Semester int    `json:"semester,omitempty"`
	Count    int64  `json:"count"`
}

// StatsByCourse groups active counts per course.
func (s *StudentService) StatsByCourse(ctx context.Context) ([]StudentStats, error) {
	var stats []StudentStats
	err := s.db.WithContext(ctx).Model(&models.Student{}).
		Select("course, count(*) as count").
		Group("course").Order("course").
		Scan(&stats).Error
	return stats, err
}

// StatsByStatus groups counts per lifecycle status.
func (s *StudentService) StatsByStatus(ctx context.Context) ([]StudentStats, error) {
	var stats []StudentStats
	err := s.db.WithContext(ctx).Model(&models.Student{}).
		Select("status, count(*) as count").
		Group("status").Order("status").
		Scan(&stats).Error
	return stats, err
}

// StatsBySemester groups counts per semester.
func (s *StudentService) StatsBySemester(ctx context.Context) ([]StudentStats, error) {
	var stats []StudentStats
	err := s.db.WithContext(ctx).Model(&models.Student{}).
		Select("semester, count(*) as count").
		Group("semester").Order("semester").
		Scan(&stats).Error
	return stats, err
}
