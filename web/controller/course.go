package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thot-edu/campus/database"
	"github.com/thot-edu/campus/database/model"
	"github.com/thot-edu/campus/logger"
	"github.com/thot-edu/campus/web/middleware"
	"github.com/thot-edu/campus/web/service"
	"github.com/thot-edu/campus/web/session"
)

// CourseController handles the catalog, the admin CRUD routes and
// enrollment.
type CourseController struct {
	courseService     service.CourseService
	enrollmentService service.EnrollmentService
}

// NewCourseController creates a CourseController and initializes its
// routes with the role guards.
func NewCourseController(g *gin.RouterGroup) *CourseController {
	a := &CourseController{}
	a.initRouter(g)
	return a
}

func (a *CourseController) initRouter(g *gin.RouterGroup) {
	g.GET("/courses", a.courses)

	admin := g.Group("")
	admin.Use(middleware.RequireLogin(), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/create", a.createPage)
	admin.POST("/save", a.save)
	admin.GET("/edit/:id", a.editPage)
	admin.POST("/update", a.update)
	admin.GET("/delete/:id", a.delete)
	admin.GET("/admin/perfil", a.adminProfile)

	registered := g.Group("")
	registered.Use(middleware.RequireLogin(), middleware.RequireRole(model.RoleRegistered))
	registered.GET("/inscribir/:id", a.enrollPage)
	registered.POST("/inscribir/:id", a.enroll)
	registered.GET("/perfil", a.profile)
}

// courses lists the catalog. Anonymous visitors only get public courses;
// lookup failures render an empty list rather than an error page.
func (a *CourseController) courses(c *gin.Context) {
	courses, err := a.courseService.GetCourses(session.GetRole(c))
	if err != nil {
		logger.Warning("list courses err:", err)
		courses = nil
	}
	html(c, "courses.html", gin.H{"cursos": courses})
}

func (a *CourseController) createPage(c *gin.Context) {
	html(c, "create.html", nil)
}

func (a *CourseController) save(c *gin.Context) {
	var course model.Course
	if err := c.ShouldBind(&course); err != nil {
		logger.Warning("bad course form:", err)
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	course.Id = 0
	if err := a.courseService.SaveCourse(&course); err != nil {
		logger.Error("save course err:", err)
	}
	c.Redirect(http.StatusFound, "/courses")
}

func (a *CourseController) editPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	course, err := a.courseService.GetCourse(id)
	if database.IsNotFound(err) {
		c.Redirect(http.StatusFound, "/courses")
		return
	} else if err != nil {
		logger.Error("get course err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	html(c, "edit.html", gin.H{"curso": course})
}

func (a *CourseController) update(c *gin.Context) {
	var course model.Course
	if err := c.ShouldBind(&course); err != nil || course.Id == 0 {
		logger.Warning("bad course form:", err)
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	if err := a.courseService.UpdateCourse(&course); err != nil {
		logger.Error("update course err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/courses")
}

func (a *CourseController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	if err := a.courseService.DeleteCourse(id); err != nil {
		logger.Error("delete course err:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/courses")
}

// enrollPage shows the enrollment confirmation for one course.
func (a *CourseController) enrollPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	course, err := a.courseService.GetCourse(id)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("get course err:", err)
		}
		c.Redirect(http.StatusFound, "/courses")
		return
	}

	user := session.GetLoginUser(c)
	if enrolled, err := a.enrollmentService.IsEnrolled(user.Id, course.Id); err == nil && enrolled {
		c.Redirect(http.StatusFound, "/perfil")
		return
	}
	html(c, "confirm_enroll.html", gin.H{"curso": course})
}

// enroll records the enrollment. Enrolling twice redirects to the profile
// without creating a second row.
func (a *CourseController) enroll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	user := session.GetLoginUser(c)
	if err := a.enrollmentService.Enroll(user.Id, id); err != nil {
		logger.Warning("enroll err:", err)
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	c.Redirect(http.StatusFound, "/perfil")
}

// profile lists the courses the logged-in user enrolled in.
func (a *CourseController) profile(c *gin.Context) {
	user := session.GetLoginUser(c)
	courses, err := a.enrollmentService.GetEnrolledCourses(user.Id)
	if err != nil {
		logger.Warning("list enrollments err:", err)
		courses = nil
	}
	html(c, "perfil.html", gin.H{
		"cursos": courses,
		"msg":    c.Query("msg"),
	})
}

// adminProfile renders the admin dashboard with the course count.
func (a *CourseController) adminProfile(c *gin.Context) {
	total, err := a.courseService.CountCourses()
	if err != nil {
		logger.Warning("count courses err:", err)
		total = 0
	}
	html(c, "admin_perfil.html", gin.H{"totalCursos": total})
}
