package store

import (
	"context"
	"sync"

	"pillbox/internal/course/models"
	id "pillbox/pkg/domain"
	"pillbox/pkg/platform/sentinel"
)

// Memory is the in-process course store. One mutex guards the whole map per
// operation; FindByTitle scans all values, so whole-map exclusivity keeps
// the scan consistent with concurrent saves.
type Memory struct {
	mu      sync.RWMutex
	courses map[id.CourseID]models.Course
}

func NewMemory() *Memory {
	return &Memory{courses: make(map[id.CourseID]models.Course)}
}

func (s *Memory) Save(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[course.ID] = cloneCourse(course)
	return nil
}

func (s *Memory) FindByID(_ context.Context, courseID id.CourseID) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.courses[courseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := cloneCourse(&course)
	return &c, nil
}

func (s *Memory) FindAll(_ context.Context) ([]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		c := cloneCourse(&course)
		courses = append(courses, &c)
	}
	return courses, nil
}

func (s *Memory) FindByTitle(_ context.Context, title string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, course := range s.courses {
		if course.Title == title {
			c := cloneCourse(&course)
			return &c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// cloneCourse deep-copies the slices so callers can mutate a loaded course
// (AddPill) without aliasing stored state before Save.
func cloneCourse(course *models.Course) models.Course {
	c := *course
	c.Tags = append([]string(nil), course.Tags...)
	c.PillIDs = append([]id.PillID(nil), course.PillIDs...)
	return c
}
