package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
	"github.com/PrinceS45/SIH-CampusOne-sub000/utils"
)

type StudentController struct {
	studentService *services.StudentService
	rdb            *redis.Client
	audit          audit.Service
}

func NewStudentController(studentService *services.StudentService, rdb *redis.Client, auditSvc audit.Service) *StudentController {
	return &StudentController{
		studentService: studentService,
		rdb:            rdb,
		audit:          auditSvc,
	}
}

// CreateStudent registers a student and issues their student code.
func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Student payload is not valid: "+err.Error())
		return
	}

	student := req.ToModel()
	if err := ctrl.studentService.Create(c.Request.Context(), student); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionCreate,
		Module:      constants.AuditModuleStudent,
		Description: "Created student " + student.StudentCode,
		PerformedBy: userIDFromContext(c),
		TargetID:    student.ID,
		TargetModel: "Student",
	})
	response.Created(c, student)
}

// GetStudents lists students with filters and pagination. Filters are
// remembered per session; useLast=true merges them back in.
func (ctrl *StudentController) GetStudents(c *gin.Context) {
	page, limit := parsePagination(c)

	filters := &dto.StudentSearchFilters{
		Course: c.Query("course"),
		Branch: c.Query("branch"),
		Name:   c.Query("name"),
	}
	if v, err := strconv.Atoi(c.Query("semester")); err == nil && v > 0 {
		filters.Semester = &v
	}
	if v, err := strconv.Atoi(c.Query("status")); err == nil && v > 0 {
		filters.Status = &v
	}
	if v, err := strconv.ParseUint(c.Query("hostelId"), 10, 64); err == nil && v > 0 {
		id := uint(v)
		filters.HostelID = &id
	}

	sessionID := c.GetString("sessionId")
	if ctrl.rdb != nil && sessionID != "" {
		if c.Query("useLast") == "true" {
			if old, err := services.GetLastFilters(c.Request.Context(), ctrl.rdb, sessionID); err == nil {
				filters = services.MergeFilters(old, filters)
			}
		}
		if err := services.SaveLastFilters(c.Request.Context(), ctrl.rdb, sessionID, filters); err != nil {
			utils.LogError("could not save session filters: %v", err)
		}
	}

	filter := services.StudentFilter{
		Course: filters.Course,
		Branch: filters.Branch,
		Name:   filters.Name,
	}
	if filters.Semester != nil {
		filter.Semester = *filters.Semester
	}
	if filters.Status != nil {
		filter.Status = *filters.Status
	}
	if filters.HostelID != nil {
		filter.HostelID = *filters.HostelID
	}

	students, total, err := ctrl.studentService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithPagination(c, students, page, limit, int(total))
}

// GetStudentByID returns one student by numeric id.
func (ctrl *StudentController) GetStudentByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	student, err := ctrl.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, student)
}

// GetStudentByCode returns one student by business key.
func (ctrl *StudentController) GetStudentByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "Student code is required")
		return
	}

	student, err := ctrl.studentService.GetByCode(c.Request.Context(), code)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, student)
}

// UpdateStudent applies partial field changes.
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.ValidationError(c, "Update payload is not valid")
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), id, updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionUpdate,
		Module:      constants.AuditModuleStudent,
		Description: "Updated student " + student.StudentCode,
		PerformedBy: userIDFromContext(c),
		TargetID:    student.ID,
		TargetModel: "Student",
		Changes:     updates,
	})
	response.Success(c, student)
}

// ChangeStudentStatus updates only the lifecycle status.
func (ctrl *StudentController) ChangeStudentStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Status is required")
		return
	}

	student, err := ctrl.studentService.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionUpdate,
		Module:      constants.AuditModuleStudent,
		Description: "Changed status of student " + student.StudentCode,
		PerformedBy: userIDFromContext(c),
		TargetID:    student.ID,
		TargetModel: "Student",
		Changes:     map[string]interface{}{"status": req.Status},
	})
	response.Success(c, student)
}

// DeleteStudent removes a student without an active allocation.
func (ctrl *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionDelete,
		Module:      constants.AuditModuleStudent,
		Description: "Deleted student",
		PerformedBy: userIDFromContext(c),
		TargetID:    id,
		TargetModel: "Student",
	})
	response.SuccessWithMessage(c, "Student deleted", nil)
}

// GetStudentStats returns grouped counts, by=course|status|semester.
func (ctrl *StudentController) GetStudentStats(c *gin.Context) {
	var (
		stats []services.StudentStats
		err   error
	)

	switch c.DefaultQuery("by", "course") {
	case "status":
		stats, err = ctrl.studentService.StatsByStatus(c.Request.Context())
	case "semester":
		stats, err = ctrl.studentService.StatsBySemester(c.Request.Context())
	default:
		stats, err = ctrl.studentService.StatsByCourse(c.Request.Context())
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, stats)
}
