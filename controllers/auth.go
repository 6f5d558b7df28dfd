// controllers/auth.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wwa-backend/config"
	"wwa-backend/models"
	"wwa-backend/utils"
)

type RegisterInput struct {
	Name     string `form:"name" binding:"required"`
	LastName string `form:"last_name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
	Phone    string `form:"phone"` // optional, enables visit reminders
}

type LoginInput struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func RegisterPage(c *gin.Context) {
	Render(c, http.StatusOK, "register.html", nil)
}

func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBind(&input); err != nil {
		utils.Flash(c, "Please fill in all required fields. Passwords need at least 8 characters.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.Flash(c, "Please enter a valid email address.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Check if email already exists
	var existing models.User
	result := config.DB.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		utils.Flash(c, "An account with this email already exists.")
		c.Redirect(http.StatusFound, "/register")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.Flash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	var customerRole models.Role
	if err := config.DB.Where("name = ?", "customer").First(&customerRole).Error; err != nil {
		log.Printf("register: customer role missing: %v", err)
		utils.Flash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := models.User{
		Name:     input.Name,
		LastName: input.LastName,
		Email:    email,
		Password: input.Password, // hashed in the model hook
		Phone:    strings.TrimSpace(input.Phone),
		RoleID:   &customerRole.ID,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Printf("register: failed to create user %s: %v", email, err)
		utils.Flash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Printf("register: failed to generate token: %v", err)
		utils.Flash(c, "Account created, please log in.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	utils.SetTokenCookie(c, token)

	utils.Flash(c, "Welcome to Wednesday's Wicked Adventures!")
	c.Redirect(http.StatusFound, "/profile")
}

func LoginPage(c *gin.Context) {
	Render(c, http.StatusOK, "login.html", nil)
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBind(&input); err != nil {
		utils.Flash(c, "Please enter your email and password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Printf("login: database error for %s: %v", email, result.Error)
		}
		utils.Flash(c, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// Check password
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.Flash(c, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Printf("login: failed to generate token: %v", err)
		utils.Flash(c, "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	utils.SetTokenCookie(c, token)

	c.Redirect(http.StatusFound, "/profile")
}

func Logout(c *gin.Context) {
	utils.ClearTokenCookie(c)
	utils.Flash(c, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}
