package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
)

func TestEnrollIsIdempotent(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	enrollmentService := EnrollmentService{}

	user, err := userService.Register(RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234"})
	assert.NoError(t, err)
	course, _ := seedCourses(t)

	assert.NoError(t, enrollmentService.Enroll(user.Id, course.Id))
	assert.NoError(t, enrollmentService.Enroll(user.Id, course.Id))

	var count int64
	err = database.GetDB().Model(model.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.Id, course.Id).
		Count(&count).
		Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	enrolled, err := enrollmentService.IsEnrolled(user.Id, course.Id)
	assert.NoError(t, err)
	assert.True(t, enrolled)
}

func TestGetEnrolledCourses(t *testing.T) {
	setup(t)
	defer teardown()

	userService := UserService{}
	enrollmentService := EnrollmentService{}

	bob, err := userService.Register(RegisterForm{Name: "Bob", Email: "bob@x.com", Password: "1234"})
	assert.NoError(t, err)
	eve, err := userService.Register(RegisterForm{Name: "Eve", Email: "eve@x.com", Password: "1234"})
	assert.NoError(t, err)

	public, private := seedCourses(t)

	assert.NoError(t, enrollmentService.Enroll(bob.Id, public.Id))
	assert.NoError(t, enrollmentService.Enroll(eve.Id, public.Id))
	assert.NoError(t, enrollmentService.Enroll(eve.Id, private.Id))

	courses, err := enrollmentService.GetEnrolledCourses(bob.Id)
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, public.Id, courses[0].Id)

	courses, err = enrollmentService.GetEnrolledCourses(eve.Id)
	assert.NoError(t, err)
	assert.Len(t, courses, 2)

	enrolled, err := enrollmentService.IsEnrolled(bob.Id, private.Id)
	assert.NoError(t, err)
	assert.False(t, enrolled)
}
