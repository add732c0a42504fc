package services

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hugolate/internal/models"
	"hugolate/internal/scoring"
)

// CourseService handles course lifecycle except resolution, which lives
// in ResolutionService
type CourseService struct {
	db *gorm.DB
}

// NewCourseService creates a new CourseService
func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// CreateCourse opens a new course for betting
func (s *CourseService) CreateCourse(req *models.CreateCourseRequest) (*models.Course, error) {
	scheduled, err := scoring.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	course := models.Course{
		ID:               uuid.New(),
		Subject:          req.Subject,
		Professor:        req.Professor,
		ScheduledMinutes: scheduled,
		Status:           models.CourseStatusOpen,
	}

	if err := s.db.Create(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return &course, nil
}

// ListCourses returns all courses, most recently created first, with
// times rendered as HH:mm strings
func (s *CourseService) ListCourses() ([]*models.CourseResponse, error) {
	var courses []models.Course
	if err := s.db.Preload("Bets").Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	responses := make([]*models.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, courseToResponse(&courses[i]))
	}
	return responses, nil
}

// GetLiveCourse returns the next OPEN course. The crowd's average guess
// is included only when the requesting user holds a MAGNIFIER.
func (s *CourseService) GetLiveCourse(userID uint) (*models.CourseResponse, error) {
	var course models.Course
	err := s.db.
		Where("status = ?", models.CourseStatusOpen).
		Order("scheduled_minutes ASC").
		Preload("Bets").
		First(&course).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // no open course right now
		}
		return nil, fmt.Errorf("failed to load live course: %w", err)
	}

	resp := courseToResponse(&course)

	if len(course.Bets) > 0 && s.hasMagnifier(userID) {
		total := 0
		for _, bet := range course.Bets {
			total += bet.GuessedMinutes
		}
		avg := scoring.FormatClock(int(math.Round(float64(total) / float64(len(course.Bets)))))
		resp.AverageEstimate = &avg
	}

	return resp, nil
}

func (s *CourseService) hasMagnifier(userID uint) bool {
	var item models.UserItem
	err := s.db.
		Where("user_id = ? AND item_type = ? AND quantity > 0", userID, models.ItemMagnifier).
		First(&item).Error
	return err == nil
}

// courseToResponse renders minutes-since-midnight fields as HH:mm strings
func courseToResponse(course *models.Course) *models.CourseResponse {
	resp := &models.CourseResponse{
		ID:             course.ID.String(),
		Subject:        course.Subject,
		Professor:      course.Professor,
		ScheduledStart: scoring.FormatClock(course.ScheduledMinutes),
		Status:         string(course.Status),
		BetCount:       len(course.Bets),
		CreatedAt:      course.CreatedAt,
	}
	if course.ActualMinutes != nil {
		actual := scoring.FormatClock(*course.ActualMinutes)
		resp.ActualArrival = &actual
	}
	return resp
}
