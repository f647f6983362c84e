package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
)

type ExamController struct {
	examService *services.ExamService
	audit       audit.Service
}

func NewExamController(examService *services.ExamService, auditSvc audit.Service) *ExamController {
	return &ExamController{
		examService: examService,
		audit:       auditSvc,
	}
}

// CreateExam defines an exam.
func (ctrl *ExamController) CreateExam(c *gin.Context) {
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Exam payload is not valid: "+err.Error())
		return
	}

	exam := req.ToModel()
	if err := ctrl.examService.Create(c.Request.Context(), exam); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionCreate,
		Module:      constants.AuditModuleExam,
		Description: "Created exam " + exam.Name,
		PerformedBy: userIDFromContext(c),
		TargetID:    exam.ID,
		TargetModel: "Exam",
	})
	response.Created(c, exam)
}

// GetExams lists exams with filters and pagination.
func (ctrl *ExamController) GetExams(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := services.ExamFilter{
		Course:  c.Query("course"),
		Branch:  c.Query("branch"),
		Subject: c.Query("subject"),
	}
	filter.Semester, _ = strconv.Atoi(c.Query("semester"))

	exams, total, err := ctrl.examService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithPagination(c, exams, page, limit, int(total))
}

// GetExam returns one exam.
func (ctrl *ExamController) GetExam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	exam, err := ctrl.examService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, exam)
}

// UpdateExam applies partial field changes.
func (ctrl *ExamController) UpdateExam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.ValidationError(c, "Update payload is not valid")
		return
	}

	exam, err := ctrl.examService.Update(c.Request.Context(), id, updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, exam)
}

// DeleteExam removes an exam and its results.
func (ctrl *ExamController) DeleteExam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.examService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionDelete,
		Module:      constants.AuditModuleExam,
		Description: "Deleted exam",
		PerformedBy: userIDFromContext(c),
		TargetID:    id,
		TargetModel: "Exam",
	})
	response.SuccessWithMessage(c, "Exam deleted", nil)
}

// RecordResult grades and stores a student's marks for an exam.
func (ctrl *ExamController) RecordResult(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "studentId and marksObtained are required")
		return
	}

	result := &models.Result{
		ExamID:        id,
		StudentID:     req.StudentID,
		MarksObtained: req.MarksObtained,
	}
	if err := ctrl.examService.RecordResult(c.Request.Context(), result); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionCreate,
		Module:      constants.AuditModuleExam,
		Description: "Recorded result for exam",
		PerformedBy: userIDFromContext(c),
		TargetID:    result.ID,
		TargetModel: "Result",
		Changes:     map[string]interface{}{"marksObtained": req.MarksObtained, "grade": result.Grade},
	})
	response.Created(c, result)
}

// GetExamResults lists all results of one exam, best marks first.
func (ctrl *ExamController) GetExamResults(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	results, err := ctrl.examService.ResultsByExam(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, results, len(results))
}

// GetStudentResults lists a student's results across exams.
func (ctrl *ExamController) GetStudentResults(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	results, err := ctrl.examService.ResultsByStudent(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, results, len(results))
}

// GetExamStats returns average marks, pass rate and grade distribution.
func (ctrl *ExamController) GetExamStats(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	stats, err := ctrl.examService.Stats(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, stats)
}
