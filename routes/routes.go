package routes

import (
	"net/http"
	"time"

	"fairway/handlers"
	"fairway/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers behind the caller-facing surface.
type HandlerBundle struct {
	Search  *handlers.SearchHandler
	Course  *handlers.CourseHandler
	Booking *handlers.BookingHandler
}

// RegisterCourseRoutes registers discovery and details endpoints.
func RegisterCourseRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/courses")
	{
		api.POST("/search", hb.Search.SearchCoursesHandler)
		api.POST("/lookup", hb.Course.LookupCourseHandler)
		api.GET("/:id", hb.Course.GetCourseByIDHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for booking validation.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/validate", hb.Booking.ValidateBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCourseRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
