package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PrinceS45/SIH-CampusOne-sub000/response"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
)

type SearchController struct {
	searchService *services.SearchService
}

func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

const defaultSearchLimit = 10

// SearchStudents fuzzy-matches students by name or code.
func (ctrl *SearchController) SearchStudents(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 50 {
		limit = defaultSearchLimit
	}

	hits, err := ctrl.searchService.SearchStudents(c.Request.Context(), query, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, hits, len(hits))
}

// SearchHostels fuzzy-matches hostels by name.
func (ctrl *SearchController) SearchHostels(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 50 {
		limit = defaultSearchLimit
	}

	hits, err := ctrl.searchService.SearchHostels(c.Request.Context(), query, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SuccessWithTotal(c, hits, len(hits))
}
