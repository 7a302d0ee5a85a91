// Package controller provides the HTTP request handlers for the campus
// catalog: authentication, course administration and enrollment.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thot-edu/campus/config"
	"github.com/thot-edu/campus/logger"
	"github.com/thot-edu/campus/web/entity"
	"github.com/thot-edu/campus/web/session"
)

// I18nWeb resolves a localized message using the per-request localizer
// installed by the locale middleware.
func I18nWeb(c *gin.Context, key string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return key
	}
	i18nFunc, ok := anyfunc.(func(key string, params ...string) string)
	if !ok {
		return key
	}
	return i18nFunc(key, params...)
}

// html renders a template with the session-derived locals every page
// expects: login flag, role and user snapshot.
func html(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	user := session.GetLoginUser(c)
	data["login"] = user != nil
	data["rol"] = string(session.GetRole(c))
	data["usuario"] = user
	data["cur_ver"] = config.GetVersion()
	c.HTML(http.StatusOK, name, data)
}

// htmlAlert renders a template with a flash alert on top.
func htmlAlert(c *gin.Context, name string, alert *entity.Alert, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["alert"] = alert
	html(c, name, data)
}
