package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wwa-backend/utils"
)

// Render wraps c.HTML, merging queued flash messages and the session state
// into the template data.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = utils.Flashes(c)
	if _, ok := data["LoggedIn"]; !ok {
		_, loggedIn := utils.CurrentUserID(c)
		data["LoggedIn"] = loggedIn
	}
	c.HTML(status, name, data)
}

// NotFound renders the 404 page. Also registered as the NoRoute handler.
func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "404.html", nil)
}
