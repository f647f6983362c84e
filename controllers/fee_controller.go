package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
)

type FeeController struct {
	feeService *services.FeeService
	audit      audit.Service
}

func NewFeeController(feeService *services.FeeService, auditSvc audit.Service) *FeeController {
	return &FeeController{
		feeService: feeService,
		audit:      auditSvc,
	}
}

// CreateFee records a fee demand for a student.
func (ctrl *FeeController) CreateFee(c *gin.Context) {
	var req dto.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Fee payload is not valid: "+err.Error())
		return
	}

	fee := req.ToModel()
	if err := ctrl.feeService.Create(c.Request.Context(), fee); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionCreate,
		Module:      constants.AuditModuleFee,
		Description: "Created fee " + fee.ReceiptNumber,
		PerformedBy: userIDFromContext(c),
		TargetID:    fee.ID,
		TargetModel: "Fee",
	})
	response.Created(c, fee)
}

// GetFees lists fees with filters and pagination.
func (ctrl *FeeController) GetFees(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := services.FeeFilter{
		AcademicYear: c.Query("academicYear"),
	}
	if v, err := strconv.ParseUint(c.Query("studentId"), 10, 64); err == nil {
		filter.StudentID = uint(v)
	}
	filter.Type, _ = strconv.Atoi(c.Query("type"))
	filter.Semester, _ = strconv.Atoi(c.Query("semester"))
	if raw := c.Query("status"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Status = &v
		}
	}

	fees, total, err := ctrl.feeService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithPagination(c, fees, page, limit, int(total))
}

// GetFee returns one fee record.
func (ctrl *FeeController) GetFee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	fee, err := ctrl.feeService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, fee)
}

// UpdateFee applies field changes to an unpaid fee.
func (ctrl *FeeController) UpdateFee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.ValidationError(c, "Update payload is not valid")
		return
	}

	fee, err := ctrl.feeService.Update(c.Request.Context(), id, updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, fee)
}

// CollectFee marks a fee as paid.
func (ctrl *FeeController) CollectFee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CollectFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "paymentMethod is required")
		return
	}

	fee, err := ctrl.feeService.Collect(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionCollect,
		Module:      constants.AuditModuleFee,
		Description: "Collected fee " + fee.ReceiptNumber,
		PerformedBy: userIDFromContext(c),
		TargetID:    fee.ID,
		TargetModel: "Fee",
		Changes:     map[string]interface{}{"paymentMethod": req.PaymentMethod},
	})
	response.SuccessWithMessage(c, "Fee collected", fee)
}

// DeleteFee removes an unpaid fee demand.
func (ctrl *FeeController) DeleteFee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.feeService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionDelete,
		Module:      constants.AuditModuleFee,
		Description: "Deleted fee",
		PerformedBy: userIDFromContext(c),
		TargetID:    id,
		TargetModel: "Fee",
	})
	response.SuccessWithMessage(c, "Fee deleted", nil)
}

// GetFeeStats returns collected and pending sums, by=type|semester.
func (ctrl *FeeController) GetFeeStats(c *gin.Context) {
	var (
		stats []services.FeeStats
		err   error
	)

	switch c.DefaultQuery("by", "type") {
	case "semester":
		stats, err = ctrl.feeService.StatsBySemester(c.Request.Context())
	default:
		stats, err = ctrl.feeService.StatsByType(c.Request.Context())
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, stats)
}
