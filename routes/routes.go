package routes

import (
	"html/template"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"wwa-backend/config"
	"wwa-backend/controllers"
	"wwa-backend/templates"
	"wwa-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(config.SessionSecret()))
	r.Use(sessions.Sessions("wwa_session", store))

	r.Use(config.PerformanceLogger())

	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates.FS, "*.html")))

	// Public pages
	r.GET("/", controllers.Index)
	r.GET("/parks/:id", controllers.ParkDetail)
	r.GET("/contact", controllers.ContactRedirect)
	r.POST("/contact", controllers.SubmitContact)

	// Auth pages
	r.GET("/register", controllers.RegisterPage)
	r.POST("/register", controllers.Register)
	r.GET("/login", controllers.LoginPage)
	r.POST("/login", controllers.Login)
	r.GET("/logout", controllers.Logout)

	// Pages requiring a session
	authed := r.Group("/")
	authed.Use(utils.AuthMiddleware())
	{
		authed.GET("/profile", controllers.Profile)
		authed.GET("/booking", controllers.BookingRedirect)
		authed.POST("/booking", controllers.CreateBooking)
		authed.GET("/booking/new", controllers.NewBooking)
		authed.GET("/health-safety-guidelines", controllers.HealthSafety)
	}

	r.NoRoute(controllers.NotFound)

	return r
}
