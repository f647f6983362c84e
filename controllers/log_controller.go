package controllers

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
)

// LogController serves the read-only audit trail.
type LogController struct {
	db *gorm.DB
}

func NewLogController(db *gorm.DB) *LogController {
	return &LogController{db: db}
}

// GetAuditLogs lists audit entries, newest first, with filters.
func (ctrl *LogController) GetAuditLogs(c *gin.Context) {
	page, limit := parsePagination(c)

	query := ctrl.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})
	if module := c.Query("module"); module != "" {
		query = query.Where("module = ?", module)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if v, err := strconv.ParseUint(c.Query("performedBy"), 10, 64); err == nil && v > 0 {
		query = query.Where("performed_by = ?", uint(v))
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		query = query.Where("created_at >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	var logs []models.AuditLog
	err := query.Order("created_at desc").
		Offset(page * limit).Limit(limit).
		Find(&logs).Error
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithPagination(c, logs, page, limit, int(total))
}

// GetAuditLog returns one audit entry.
func (ctrl *LogController) GetAuditLog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var entry models.AuditLog
	err := ctrl.db.WithContext(c.Request.Context()).First(&entry, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		handleServiceError(c, err)
		return
	}
	response.Success(c, entry)
}
