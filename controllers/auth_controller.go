package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
)

type AuthController struct {
	authService *services.AuthService
	audit       audit.Service
}

func NewAuthController(authService *services.AuthService, auditSvc audit.Service) *AuthController {
	return &AuthController{
		authService: authService,
		audit:       auditSvc,
	}
}

// Login issues an access token for valid staff credentials.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Email and password are required")
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionUpdate,
		Module:      constants.AuditModuleAuth,
		Description: "User logged in",
		PerformedBy: result.User.ID,
		TargetID:    result.User.ID,
		TargetModel: "User",
	})
	response.Success(c, result)
}

// Register creates a staff account. Admin only.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Name, email and password are required")
		return
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := ctrl.authService.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		handleServiceError(c, err)
		return
	}

	ctrl.audit.Record(audit.Entry{
		Action:      constants.AuditActionCreate,
		Module:      constants.AuditModuleAuth,
		Description: "Created staff account " + user.Email,
		PerformedBy: userIDFromContext(c),
		TargetID:    user.ID,
		TargetModel: "User",
	})
	response.Created(c, user)
}

// Profile returns the authenticated user.
func (ctrl *AuthController) Profile(c *gin.Context) {
	userID := userIDFromContext(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	user, err := ctrl.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// ChangePassword rotates the authenticated user's password.
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	userID := userIDFromContext(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Current and new password are required")
		return
	}

	if err := ctrl.authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Password changed", nil)
}
