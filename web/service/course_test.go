package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
)

func seedCourses(t *testing.T) (public model.Course, private model.Course) {
	service := CourseService{}

	public = model.Course{Title: "Go desde cero", Category: "programacion", Visibility: model.VisibilityPublic}
	private = model.Course{Title: "Go avanzado", Category: "programacion", Visibility: model.VisibilityPrivate}
	assert.NoError(t, service.SaveCourse(&public))
	assert.NoError(t, service.SaveCourse(&private))
	return public, private
}

func TestGetCoursesFiltersByRole(t *testing.T) {
	setup(t)
	defer teardown()

	service := CourseService{}
	public, private := seedCourses(t)

	visible, err := service.GetCourses(model.RolePublic)
	assert.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Equal(t, public.Id, visible[0].Id)

	all, err := service.GetCourses(model.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = service.GetCourses(model.RoleRegistered)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	ids := []int{all[0].Id, all[1].Id}
	assert.Contains(t, ids, private.Id)
}

func TestCourseCRUD(t *testing.T) {
	setup(t)
	defer teardown()

	service := CourseService{}

	course := model.Course{Title: "Historia", Description: "desc", Category: "humanidades"}
	assert.NoError(t, service.SaveCourse(&course))
	assert.NotZero(t, course.Id)
	assert.Equal(t, model.VisibilityPublic, course.Visibility)

	retrieved, err := service.GetCourse(course.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Historia", retrieved.Title)

	retrieved.Title = "Historia moderna"
	retrieved.Visibility = model.VisibilityPrivate
	assert.NoError(t, service.UpdateCourse(retrieved))

	updated, err := service.GetCourse(course.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Historia moderna", updated.Title)
	assert.Equal(t, model.VisibilityPrivate, updated.Visibility)

	count, err := service.CountCourses()
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	assert.NoError(t, service.DeleteCourse(course.Id))
	_, err = service.GetCourse(course.Id)
	assert.True(t, database.IsNotFound(err))
}
