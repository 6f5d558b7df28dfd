// controllers/contact.go
package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wwa-backend/config"
	"wwa-backend/models"
	"wwa-backend/utils"
)

// ContactRedirect sends GET /contact back to the index contact anchor.
func ContactRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/#contact")
}

// SubmitContact validates and stores a contact message, then redirects back
// to the page the visitor came from.
func SubmitContact(c *gin.Context) {
	target := utils.ContactRedirectTarget(c.Request.Referer())

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	body := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || body == "" {
		utils.Flash(c, "Please fill in all fields.")
		c.Redirect(http.StatusFound, target)
		return
	}

	message := models.Message{Name: name, Email: email, Message: body}
	if err := config.DB.Create(&message).Error; err != nil {
		log.Printf("contact: failed to save message from %s: %v", email, err)
		utils.Flash(c, "There was an error sending your message. Please try again.")
		c.Redirect(http.StatusFound, target)
		return
	}

	utils.Flash(c, "Thank you for your message! We'll get back to you soon.")
	c.Redirect(http.StatusFound, target)
}
