package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/thot-edu/campus/web/session"
)

// IndexController handles the landing page.
type IndexController struct{}

// NewIndexController creates an IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
}

func (a *IndexController) index(c *gin.Context) {
	name := "Invitado"
	if user := session.GetLoginUser(c); user != nil {
		name = user.Name
	}
	html(c, "index.html", gin.H{
		"nombre":      "THOT",
		"experiencia": "Los milagros llegan a tu lado cuando empieces a aprender",
		"name":        name,
	})
}
