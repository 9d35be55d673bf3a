package handlers

import (
	"net/http"

	"fairway/models"
	"fairway/services/search"
	"fairway/utils"

	"github.com/gin-gonic/gin"
)

// SearchHandler exposes the course discovery engine.
type SearchHandler struct {
	Svc search.SearchService
}

func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{Svc: svc}
}

// SearchCoursesHandler runs a filtered, ranked course search. Invalid input
// (no location, state+country, malformed dates) comes back as 400; degraded
// collaborators never fail the request.
func (h *SearchHandler) SearchCoursesHandler(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search request", err.Error())
		return
	}

	result, err := h.Svc.Search(c.Request.Context(), criteria)
	if err != nil {
		// Search only errors on invalid input; collaborator failures are
		// folded into a degraded result.
		utils.JSONError(c, http.StatusBadRequest, "Invalid search request", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
