// controllers/parks.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wwa-backend/config"
	"wwa-backend/models"
)

// Index shows the park listing with the contact form anchor.
func Index(c *gin.Context) {
	var parks []models.Park
	if err := config.DB.Order("id").Find(&parks).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "index.html", gin.H{"Parks": parks})
}

// ParkDetail shows a single park, 404 when the id is unknown.
func ParkDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}

	var park models.Park
	if err := config.DB.First(&park, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
		} else {
			c.String(http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	Render(c, http.StatusOK, "park_detail.html", gin.H{"Park": park})
}

// HealthSafety shows the guidelines page. Auth-gated by the router.
func HealthSafety(c *gin.Context) {
	Render(c, http.StatusOK, "health_safety.html", gin.H{
		"Today": time.Now().Format("January 2, 2006"),
	})
}
