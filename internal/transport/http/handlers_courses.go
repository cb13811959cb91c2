package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	coursemodels "pillbox/internal/course/models"
	courseservice "pillbox/internal/course/service"
	id "pillbox/pkg/domain"
	dErrors "pillbox/pkg/domain-errors"
)

//go:generate mockgen -source=handlers_courses.go -destination=mocks/course_service.go -package=mocks CourseService

// CourseService is the course use-case contract consumed by the HTTP layer.
type CourseService interface {
	CreateCourse(ctx context.Context, cmd courseservice.CreateCourseCommand) (id.CourseID, error)
	AddPillToCourse(ctx context.Context, cmd courseservice.AddPillToCourseCommand) error
	FindCourse(ctx context.Context, courseID id.CourseID) (*coursemodels.Course, error)
	FindAllCourses(ctx context.Context) ([]*coursemodels.Course, error)
	FindCourseWithPills(ctx context.Context, courseID id.CourseID) (*courseservice.CourseWithPills, error)
}

// CourseHandler handles the course endpoints.
type CourseHandler struct {
	courses CourseService
}

func NewCourseHandler(courses CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

func (h *CourseHandler) Register(r chi.Router) {
	r.Post("/courses", h.handleCreateCourse)
	r.Get("/courses", h.handleFindAllCourses)
	r.Get("/courses/{id}", h.handleFindCourse)
	r.Get("/courses/{id}/pills", h.handleFindCourseWithPills)
	r.Post("/courses/{id}/pills", h.handleAddPillToCourse)
}

type createCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Difficulty  string   `json:"difficulty"`
	Hours       int      `json:"hours"`
	Tags        []string `json:"tags"`
	Price       float64  `json:"price"`
	PillIDs     []string `json:"pill_ids"`
}

// toCommand validates boundary rules and builds the typed command. Field
// validation lives here, not in the service (the service trusts its input).
func (req createCourseRequest) toCommand() (courseservice.CreateCourseCommand, error) {
	var cmd courseservice.CreateCourseCommand

	if strings.TrimSpace(req.Title) == "" {
		return cmd, dErrors.New(dErrors.CodeBadRequest, "title is required")
	}
	if strings.TrimSpace(req.Instructor) == "" {
		return cmd, dErrors.New(dErrors.CodeBadRequest, "instructor is required")
	}
	if req.Hours < 0 {
		return cmd, dErrors.New(dErrors.CodeBadRequest, "hours must not be negative")
	}
	if req.Price < 0 {
		return cmd, dErrors.New(dErrors.CodeBadRequest, "price must not be negative")
	}

	difficulty, err := coursemodels.ParseDifficulty(req.Difficulty)
	if err != nil {
		return cmd, err
	}

	pillIDs := make([]id.PillID, 0, len(req.PillIDs))
	for _, raw := range req.PillIDs {
		pid, err := id.ParsePillID(raw)
		if err != nil {
			return cmd, dErrors.Newf(dErrors.CodeBadRequest, "invalid pill id %q", raw)
		}
		pillIDs = append(pillIDs, pid)
	}

	return courseservice.CreateCourseCommand{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Difficulty:  difficulty,
		Hours:       req.Hours,
		Tags:        req.Tags,
		Price:       req.Price,
		PillIDs:     pillIDs,
	}, nil
}

type createCourseResponse struct {
	ID id.CourseID `json:"id"`
}

func (h *CourseHandler) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	cmd, err := req.toCommand()
	if err != nil {
		writeError(w, err)
		return
	}

	courseID, err := h.courses.CreateCourse(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCourseResponse{ID: courseID})
}

func (h *CourseHandler) handleFindCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := id.ParseCourseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	course, err := h.courses.FindCourse(r.Context(), courseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) handleFindAllCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.FindAllCourses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if courses == nil {
		courses = []*coursemodels.Course{}
	}

	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) handleFindCourseWithPills(w http.ResponseWriter, r *http.Request) {
	courseID, err := id.ParseCourseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.courses.FindCourseWithPills(r.Context(), courseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type addPillRequest struct {
	PillID string `json:"pill_id"`
}

func (h *CourseHandler) handleAddPillToCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := id.ParseCourseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req addPillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	pillID, err := id.ParsePillID(req.PillID)
	if err != nil {
		writeError(w, dErrors.Newf(dErrors.CodeBadRequest, "invalid pill id %q", req.PillID))
		return
	}

	err = h.courses.AddPillToCourse(r.Context(), courseservice.AddPillToCourseCommand{
		CourseID: courseID,
		PillID:   pillID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
