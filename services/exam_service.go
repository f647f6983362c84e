package services

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/validator"
)

type ExamService struct {
	db     *gorm.DB
	logger logger.Logger
}

type ExamServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewExamService(opts ExamServiceOptions) *ExamService {
	return &ExamService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// ExamFilter narrows the exam list.
type ExamFilter struct {
	Course   string
	Branch   string
	Semester int
	Subject  string
}

// Create persists an exam definition.
func (s *ExamService) Create(ctx context.Context, exam *models.Exam) error {
	if err := validator.ValidateExam(exam); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(exam).Error
}

// GetByID returns one exam.
func (s *ExamService) GetByID(ctx context.Context, id uint) (*models.Exam, error) {
	var exam models.Exam
	err := s.db.WithContext(ctx).First(&exam, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrExamNotFound
		}
		return nil, err
	}
	return &exam, nil
}

// List returns a filtered page of exams plus the total count.
func (s *ExamService) List(ctx context.Context, filter ExamFilter, page, limit int) ([]models.Exam, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Exam{})

	if filter.Course != "" {
		query = query.Where("course = ?", filter.Course)
	}
	if filter.Branch != "" {
		query = query.Where("branch = ?", filter.Branch)
	}
	if filter.Semester > 0 {
		query = query.Where("semester = ?", filter.Semester)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []models.Exam
	err := query.Order("date desc").
		Offset(page * limit).Limit(limit).
		Find(&exams).Error
	if err != nil {
		return nil, 0, err
	}
	return exams, total, nil
}

// Update applies field changes to an exam.
func (s *ExamService) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Exam, error) {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	exam, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(exam).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes an exam and its results.
func (s *ExamService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&models.Result{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Exam{}, id).Error
	})
}

// RecordResult grades and stores a student's marks for an exam. One result
// per exam and student.
func (s *ExamService) RecordResult(ctx context.Context, result *models.Result) error {
	exam, err := s.GetByID(ctx, result.ExamID)
	if err != nil {
		return err
	}
	if err := validator.ValidateResult(result, exam); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", result.StudentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.ErrStudentNotFound
	}

	if err := s.db.WithContext(ctx).Model(&models.Result{}).
		Where("exam_id = ? AND student_id = ?", result.ExamID, result.StudentID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.ErrResultExists
	}

	percentage := result.MarksObtained / exam.MaxMarks * 100
	result.Grade = models.GradeFor(percentage)
	result.Passed = result.MarksObtained >= exam.PassingMarks

	return s.db.WithContext(ctx).Create(result).Error
}

// ResultsByExam lists all results for one exam.
func (s *ExamService) ResultsByExam(ctx context.Context, examID uint) ([]models.Result, error) {
	if _, err := s.GetByID(ctx, examID); err != nil {
		return nil, err
	}
	var results []models.Result
	err := s.db.WithContext(ctx).Preload("Student").
		Where("exam_id = ?", examID).
		Order("marks_obtained desc").
		Find(&results).Error
	return results, err
}

// ResultsByStudent lists a student's results across exams.
func (s *ExamService) ResultsByStudent(ctx context.Context, studentID uint) ([]models.Result, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", studentID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.ErrStudentNotFound
	}

	var results []models.Result
	err := s.db.WithContext(ctx).Preload("Exam").
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&results).Error
	return results, err
}

// ExamStats summarizes one exam's results.
type ExamStats struct {
	ExamID       uint             `json:"examId"`
	Appeared     int64            `json:"appeared"`
	AverageMarks float64          `json:"averageMarks"`
	PassRate     float64          `json:"passRate"`
	Grades       map[string]int64 `json:"grades"`
}

// Stats computes average marks, pass rate and grade distribution.
func (s *ExamService) Stats(ctx context.Context, examID uint) (*ExamStats, error) {
	if _, err := s.GetByID(ctx, examID); err != nil {
		return nil, err
	}

	stats := &ExamStats{ExamID: examID, Grades: make(map[string]int64)}

	row := struct {
		Appeared int64
		Average  float64
		Passed   int64
	}{}
	err := s.db.WithContext(ctx).Model(&models.Result{}).
		Select("count(*) as appeared, coalesce(avg(marks_obtained), 0) as average, count(*) filter (where passed) as passed").
		Where("exam_id = ?", examID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats.Appeared = row.Appeared
	stats.AverageMarks = row.Average
	if row.Appeared > 0 {
		stats.PassRate = float64(row.Passed) / float64(row.Appeared)
	}

	type gradeCount struct {
		Grade string
		Count int64
	}
	var grades []gradeCount
	err = s.db.WithContext(ctx).Model(&models.Result{}).
		Select("grade, count(*) as count").
		Where("exam_id = ?", examID).
		Group("grade").
		Scan(&grades).Error
	if err != nil {
		return nil, err
	}
	for _, g := range grades {
		stats.Grades[g.Grade] = g.Count
	}
	return stats, nil
}
