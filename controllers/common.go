package controllers

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/utils"
)

// parsePagination reads page and limit query params. Page is zero-based.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// userIDFromContext returns the authenticated user id set by the auth
// middleware, or zero when absent.
func userIDFromContext(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// handleServiceError maps service errors onto the response envelope.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrStudentNotFound),
		stderrors.Is(err, errors.ErrHostelNotFound),
		stderrors.Is(err, errors.ErrRoomNotFound),
		stderrors.Is(err, errors.ErrFeeNotFound),
		stderrors.Is(err, errors.ErrExamNotFound),
		stderrors.Is(err, errors.ErrUserNotFound):
		response.NotFoundWithMessage(c, err.Error())

	// Allocation business-rule failures are validation errors, not
	// resource conflicts.
	case stderrors.Is(err, errors.ErrRoomNotAvailable),
		stderrors.Is(err, errors.ErrStudentAllocated),
		stderrors.Is(err, errors.ErrGenderMismatch),
		stderrors.Is(err, errors.ErrNoAllocation):
		response.ValidationError(c, err.Error())

	case stderrors.Is(err, errors.ErrRoomOccupied),
		stderrors.Is(err, errors.ErrHostelOccupied),
		stderrors.Is(err, errors.ErrFeeAlreadyPaid),
		stderrors.Is(err, errors.ErrResultExists),
		stderrors.Is(err, errors.ErrUserAlreadyExists):
		response.Conflict(c, err.Error())

	case stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, errors.ErrUserInactive):
		response.Unauthorized(c)

	default:
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		utils.LogError("unhandled service error: %v", err)
		response.ServerErrorWithMessage(c, err.Error())
	}
}
