// controllers/booking.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wwa-backend/config"
	"wwa-backend/models"
	"wwa-backend/utils"
)

// Format used by <input type="datetime-local">.
const bookingDateLayout = "2006-01-02T15:04"

// BookingRedirect sends GET /booking to the profile, which lists bookings.
func BookingRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/profile")
}

// NewBooking renders the booking form.
func NewBooking(c *gin.Context) {
	var parks []models.Park
	if err := config.DB.Order("id").Find(&parks).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "booking_form.html", gin.H{"Parks": parks})
}

// CreateBooking validates the submitted form and inserts one booking for the
// current user.
func CreateBooking(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	parkID, err := strconv.ParseUint(c.PostForm("park_id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	var park models.Park
	if err := config.DB.First(&park, parkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
		} else {
			c.String(http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	date, err := time.Parse(bookingDateLayout, c.PostForm("date"))
	if err != nil {
		utils.Flash(c, "Please choose a valid date and time.")
		c.Redirect(http.StatusFound, "/booking/new")
		return
	}

	numTickets, err := strconv.Atoi(c.PostForm("num_tickets"))
	if err != nil || numTickets < 1 {
		utils.Flash(c, "Number of tickets must be a positive number.")
		c.Redirect(http.StatusFound, "/booking/new")
		return
	}

	booking := models.Booking{
		UserID:       userID,
		ParkID:       park.ID,
		Date:         date,
		NumTickets:   numTickets,
		HealthSafety: utils.ParseCheckbox(c.PostForm("health_safety")),
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		log.Printf("booking: failed to create booking for user %d: %v", userID, err)
		utils.Flash(c, "There was an error creating your booking. Please try again.")
		c.Redirect(http.StatusFound, "/booking/new")
		return
	}

	utils.Flash(c, "Booking confirmed! Your reference is "+booking.Reference)
	c.Redirect(http.StatusFound, "/profile")
}
