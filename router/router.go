package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kajtekw/restaurant-manager/controllers"
	"github.com/kajtekw/restaurant-manager/middlewares"
	"gorm.io/gorm"
)

type Options struct {
	CORSOrigin string
	StaticDir  string
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(opts.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	menuCtrl := controllers.NewMenuController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Built browser client, when present.
	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			r.Static("/app", opts.StaticDir)
			r.GET("/", func(c *gin.Context) {
				c.Redirect(http.StatusMovedPermanently, "/app/")
			})
		}
	}

	// ----------------------------------------------------------------
	//                      AUTH ROUTES (no gate)
	// ----------------------------------------------------------------
	auth := r.Group("/api/auth")
	{
		credential := auth.Group("/")
		credential.Use(middlewares.NewStrictRateLimiter())
		{
			credential.POST("/register", authCtrl.Register)
			credential.POST("/login", authCtrl.Login)
		}

		auth.POST("/logout", authCtrl.Logout)
		auth.GET("/me", middlewares.OptionalAuth(db), authCtrl.Me)
	}

	// ----------------------------------------------------------------
	//                      PROTECTED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(db))
	{
		api.GET("/menu", menuCtrl.GetAllMenuItems)
		api.POST("/menu", menuCtrl.CreateMenuItem)
		api.GET("/menu/:id", menuCtrl.GetMenuItemByID)
		api.PUT("/menu/:id", menuCtrl.UpdateMenuItem)
		api.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)

		api.GET("/reservations", reservationCtrl.GetReservations)
		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.PUT("/reservations/:id", reservationCtrl.UpdateReservation)
		api.PATCH("/reservations/:id/cancel", reservationCtrl.CancelReservation)
		api.DELETE("/reservations/:id", reservationCtrl.DeleteReservation)
	}

	return r
}
