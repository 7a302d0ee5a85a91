package service

import (
	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
)

type CourseService struct{}

// GetCourses lists the catalog as seen by the given role. Anonymous
// visitors only see courses with public visibility.
func (s *CourseService) GetCourses(viewer model.Role) ([]model.Course, error) {
	db := database.GetDB()
	var courses []model.Course
	q := db.Model(model.Course{})
	if viewer == model.RolePublic {
		q = q.Where("visibility = ?", model.VisibilityPublic)
	}
	err := q.Find(&courses).Error
	return courses, err
}

func (s *CourseService) GetCourse(id int) (*model.Course, error) {
	db := database.GetDB()
	course := &model.Course{}
	if err := db.First(course, id).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) SaveCourse(course *model.Course) error {
	if course.Visibility == "" {
		course.Visibility = model.VisibilityPublic
	}
	return database.GetDB().Create(course).Error
}

func (s *CourseService) UpdateCourse(course *model.Course) error {
	db := database.GetDB()
	return db.Model(model.Course{}).
		Where("id = ?", course.Id).
		Updates(map[string]any{
			"title":       course.Title,
			"description": course.Description,
			"category":    course.Category,
			"visibility":  course.Visibility,
		}).
		Error
}

func (s *CourseService) DeleteCourse(id int) error {
	return database.GetDB().Delete(&model.Course{}, id).Error
}

// CountCourses powers the admin dashboard.
func (s *CourseService) CountCourses() (int64, error) {
	var count int64
	err := database.GetDB().Model(model.Course{}).Count(&count).Error
	return count, err
}
