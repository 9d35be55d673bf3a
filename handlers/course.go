package handlers

import (
	"errors"
	"net/http"

	"fairway/database/repository"
	"fairway/services/search"
	"fairway/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CourseHandler serves single-course detail lookups.
type CourseHandler struct {
	Svc search.SearchService
}

func NewCourseHandler(svc search.SearchService) *CourseHandler {
	return &CourseHandler{Svc: svc}
}

// GetCourseByIDHandler returns details for a specific course.
func (h *CourseHandler) GetCourseByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	course, err := h.Svc.GetCourse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Course not found", "No course with id "+id)
			return
		}
		logger.Error("Failed to fetch course", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch course", "")
		return
	}
	c.JSON(http.StatusOK, course)
}

// LookupCourseRequest resolves a course by name instead of id, optionally
// narrowed by state or country.
type LookupCourseRequest struct {
	Name    string `json:"name" binding:"required"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// LookupCourseHandler resolves a course by name.
func (h *CourseHandler) LookupCourseHandler(c *gin.Context) {
	logger := getLogger(c)

	var req LookupCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid lookup request", err.Error())
		return
	}

	course, err := h.Svc.LookupCourse(c.Request.Context(), req.Name, req.State, req.Country)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Course not found", "No course matching "+req.Name)
			return
		}
		logger.Error("Failed to look up course", zap.String("name", req.Name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to look up course", "")
		return
	}
	c.JSON(http.StatusOK, course)
}
