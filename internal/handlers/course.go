package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hugolate/internal/auth"
	"hugolate/internal/models"
	"hugolate/internal/services"
)

// CourseHandler handles course endpoints, including admin resolution
type CourseHandler struct {
	courseService     *services.CourseService
	resolutionService *services.ResolutionService
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService *services.CourseService, resolutionService *services.ResolutionService) *CourseHandler {
	return &CourseHandler{
		courseService:     courseService,
		resolutionService: resolutionService,
	}
}

// ListCourses returns all courses.
// GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetLiveCourse returns the next OPEN course, or null when none is open.
// GET /api/courses/live
func (h *CourseHandler) GetLiveCourse(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	course, err := h.courseService.GetLiveCourse(userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	if course == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, course)
}

// CreateCourse opens a new course for betting (admin only).
// POST /api/admin/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseService.CreateCourse(&req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"course": course})
}

// ResolveCourse enters Hugo's actual arrival time and settles every bet
// (admin only).
// POST /api/admin/courses/:id/resolve
func (h *CourseHandler) ResolveCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	var req models.ResolveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.resolutionService.ResolveCourse(courseID, req.ActualTime); err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
