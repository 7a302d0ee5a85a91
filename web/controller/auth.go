package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thot-edu/campus/logger"
	"github.com/thot-edu/campus/web/entity"
	"github.com/thot-edu/campus/web/service"
	"github.com/thot-edu/campus/web/session"
)

// LoginForm represents the login submission.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	userService service.UserService
}

// NewAuthController creates an AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginPage)
	g.GET("/register", a.registerPage)

	g.POST("/register", a.register)
	g.POST("/auth", a.login)
	g.POST("/logout", a.logout)
}

func (a *AuthController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "login.html", nil)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register.html", gin.H{"register": true})
}

// register validates the submission and creates the account. Validation
// failures are re-rendered with the submitted values; the new user is not
// logged in.
func (a *AuthController) register(c *gin.Context) {
	var form service.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bad register form:", err)
		htmlAlert(c, "register.html", entity.ErrorAlert(
			I18nWeb(c, "pages.register.failTitle"),
			I18nWeb(c, "pages.register.failMessage"),
			"register",
		), nil)
		return
	}

	_, err := a.userService.Register(form)

	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, I18nWeb(c, fe.Key))
		}
		html(c, "register.html", gin.H{
			"validaciones": messages,
			"valores":      form,
		})
		return
	}
	if err != nil {
		logger.Warning("register err:", err)
		htmlAlert(c, "register.html", entity.ErrorAlert(
			I18nWeb(c, "pages.register.failTitle"),
			I18nWeb(c, "pages.register.failMessage"),
			"register",
		), nil)
		return
	}

	htmlAlert(c, "register.html", entity.SuccessAlert(
		I18nWeb(c, "pages.register.successTitle"),
		I18nWeb(c, "pages.register.successMessage"),
		"login",
		2500,
	), nil)
}

// login authenticates the credentials and establishes the session. Missing
// fields short-circuit before any database access, and unknown-email and
// wrong-password failures render the same alert.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		htmlAlert(c, "login.html", entity.ErrorAlert(
			I18nWeb(c, "pages.login.warningTitle"),
			I18nWeb(c, "pages.login.missingCredentials"),
			"login",
		), nil)
		return
	}

	user, err := a.userService.Authenticate(form.Email, form.Password)
	if err != nil {
		logger.Warningf("failed login for %q, IP: %q", form.Email, c.ClientIP())
		htmlAlert(c, "login.html", entity.ErrorAlert(
			I18nWeb(c, "pages.login.errorTitle"),
			I18nWeb(c, "pages.login.invalidCredentials"),
			"login",
		), nil)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
		htmlAlert(c, "login.html", entity.ErrorAlert(
			I18nWeb(c, "alerts.genericErrorTitle"),
			I18nWeb(c, "alerts.genericErrorMessage"),
			"login",
		), nil)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Email, c.ClientIP())
	htmlAlert(c, "login.html", entity.SuccessAlert(
		I18nWeb(c, "pages.login.successTitle"),
		I18nWeb(c, "pages.login.successMessage"),
		"",
		1500,
	), nil)
}

// logout destroys the session and redirects home. Logging out with no
// session is a no-op.
func (a *AuthController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
