package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/validator"
)

type FeeService struct {
	db     *gorm.DB
	logger logger.Logger
}

type FeeServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewFeeService(opts FeeServiceOptions) *FeeService {
	return &FeeService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// FeeFilter narrows the fee list.
type FeeFilter struct {
	StudentID    uint
	Type         int
	Status       *int
	Semester     int
	AcademicYear string
}

// Create persists a fee demand with a generated receipt number.
func (s *FeeService) Create(ctx context.Context, fee *models.Fee) error {
	if err := validator.ValidateFee(fee); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).
		Where("id = ?", fee.StudentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errors.ErrStudentNotFound
	}

	if fee.ReceiptNumber == "" {
		fee.ReceiptNumber = NewReceiptNumber()
	}
	return s.db.WithContext(ctx).Create(fee).Error
}

// NewReceiptNumber issues a unique receipt identifier.
func NewReceiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.NewString()[:8])
}

// GetByID returns one fee with its student.
func (s *FeeService) GetByID(ctx context.Context, id uint) (*models.Fee, error) {
	var fee models.Fee
	err := s.db.WithContext(ctx).Preload("Student").First(&fee, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrFeeNotFound
		}
		return nil, err
	}
	return &fee, nil
}

// List returns a filtered page of fees plus the total count.
func (s *FeeService) List(ctx context.Context, filter FeeFilter, page, limit int) ([]models.Fee, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Fee{})

	if filter.StudentID > 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.Type > 0 {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Semester > 0 {
		query = query.Where("semester = ?", filter.Semester)
	}
	if filter.AcademicYear != "" {
		query = query.Where("academic_year = ?", filter.AcademicYear)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fees []models.Fee
	err := query.Preload("Student").
		Order("due_date desc").
		Offset(page * limit).Limit(limit).
		Find(&fees).Error
	if err != nil {
		return nil, 0, err
	}
	return fees, total, nil
}

// Update applies field changes to an unpaid fee.
func (s *FeeService) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Fee, error) {
	delete(updates, "id")
	delete(updates, "receipt_number")
	delete(updates, "receiptNumber")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	fee, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fee.Status == constants.FeeStatusPaid {
		return nil, errors.ErrFeeAlreadyPaid
	}

	if err := s.db.WithContext(ctx).Model(fee).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Collect marks a pending or overdue fee as paid.
func (s *FeeService) Collect(ctx context.Context, id uint, paymentMethod string) (*models.Fee, error) {
	fee, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fee.Status == constants.FeeStatusPaid {
		return nil, errors.ErrFeeAlreadyPaid
	}

	now := time.Now()
	err = s.db.WithContext(ctx).Model(&models.Fee{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         constants.FeeStatusPaid,
			"paid_date":      now,
			"payment_method": paymentMethod,
		}).Error
	if err != nil {
		return nil, err
	}

	fee.Status = constants.FeeStatusPaid
	fee.PaidDate = &now
	fee.PaymentMethod = paymentMethod
	s.logger.Info("collected fee %s for student %d", fee.ReceiptNumber, fee.StudentID)
	return fee, nil
}

// Delete removes an unpaid fee demand.
func (s *FeeService) Delete(ctx context.Context, id uint) error {
	fee, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fee.Status == constants.FeeStatusPaid {
		return errors.ErrFeeAlreadyPaid
	}
	return s.db.WithContext(ctx).Delete(&models.Fee{}, id).Error
}

// MarkOverdue flags pending fees past their due date. Run by the nightly
// cron; returns the number of rows flagged.
func (s *FeeService) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Fee{}).
		Where("status = ? AND due_date < ?", constants.FeeStatusPending, now).
		Update("status", constants.FeeStatusOverdue)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.Info("marked %d fees overdue", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// FeeStats is one row of the fee statistics endpoint.
type FeeStats struct {
	Type      int     `json:"type,omitempty"`
	Semester  int     `json:"semester,omitempty"`
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

// StatsByType sums collected and outstanding amounts per fee type.
func (s *FeeService) StatsByType(ctx context.Context) ([]FeeStats, error) {
	var stats []FeeStats
	err := s.db.WithContext(ctx).Model(&models.Fee{}).
		Select(`type,
			coalesce(sum(amount) filter (where status = ?), 0) as collected,
			coalesce(sum(amount) filter (where status in (?, ?)), 0) as pending`,
			constants.FeeStatusPaid, constants.FeeStatusPending, constants.FeeStatusOverdue).
		Group("type").Order("type").
		Scan(&stats).Error
	return stats, err
}

// StatsBySemester sums collected and outstanding amounts per semester.
func (s *FeeService) StatsBySemester(ctx context.Context) ([]FeeStats, error) {
	var stats []FeeStats
	err := s.db.WithContext(ctx).Model(&models.Fee{}).
		Select(`semester,
			coalesce(sum(amount) filter (where status = ?), 0) as collected,
			coalesce(sum(amount) filter (where status in (?, ?)), 0) as pending`,
			constants.FeeStatusPaid, constants.FeeStatusPending, constants.FeeStatusOverdue).
		Group("semester").Order("semester").
		Scan(&stats).Error
	return stats, err
}
