package service

import (
	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
)

type EnrollmentService struct{}

// Enroll records the user into the course. Enrolling twice is accepted
// and leaves exactly one row: the unique index on (user_id, course_id)
// decides, so concurrent duplicate attempts cannot race each other in.
func (s *EnrollmentService) Enroll(userId int, courseId int) error {
	enrollment := &model.Enrollment{
		UserId:   userId,
		CourseId: courseId,
	}
	err := database.GetDB().Create(enrollment).Error
	if database.IsDuplicate(err) {
		return nil
	}
	return err
}

// IsEnrolled reports whether the user already joined the course.
func (s *EnrollmentService) IsEnrolled(userId int, courseId int) (bool, error) {
	var count int64
	err := database.GetDB().Model(model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userId, courseId).
		Count(&count).
		Error
	return count > 0, err
}

// GetEnrolledCourses lists the courses the user joined, for the profile
// page.
func (s *EnrollmentService) GetEnrolledCourses(userId int) ([]model.Course, error) {
	db := database.GetDB()
	var courses []model.Course
	err := db.Model(model.Course{}).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userId).
		Find(&courses).
		Error
	return courses, err
}
