// controllers/profile.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wwa-backend/config"
	"wwa-backend/models"
	"wwa-backend/utils"
)

// Profile shows the current user's details and bookings.
func Profile(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var user models.User
	if err := config.DB.Preload("Role").First(&user, userID).Error; err != nil {
		// Stale cookie for a user that no longer exists
		utils.ClearTokenCookie(c)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Park").
		Where("user_id = ?", userID).
		Order("date").
		Find(&bookings).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "profile.html", gin.H{
		"User":     user,
		"Bookings": bookings,
		"LoggedIn": true,
	})
}
