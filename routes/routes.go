package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/idalopban/NutriKallpa-sub005/controllers"
	"github.com/idalopban/NutriKallpa-sub005/middlewares"
	"github.com/idalopban/NutriKallpa-sub005/services"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/mfa/verify", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Patient records and their measurements
	patients := r.Group("/patients")
	patients.Use(middlewares.AuthMiddleware())
	{
		patients.POST("", controllers.CreatePatient)
		patients.GET("", controllers.ListPatients)
		patients.GET("/:id", controllers.GetPatient)
		patients.PUT("/:id", controllers.UpdatePatient)
		patients.DELETE("/:id", controllers.DeletePatient)
		patients.GET("/:id/schema", controllers.GetPatientSchema)

		patients.POST("/:id/measurements", controllers.CreateMeasurement)
		patients.GET("/:id/measurements", controllers.ListMeasurements)
		patients.GET("/:id/measurements/:mid", controllers.GetMeasurement)
		patients.DELETE("/:id/measurements/:mid", controllers.DeleteMeasurement)

		patients.POST("/:id/evaluations", controllers.Evaluate)
	}

	appointments := r.Group("/appointments")
	appointments.Use(middlewares.AuthMiddleware())
	{
		appointments.POST("", controllers.CreateAppointment)
		appointments.GET("", controllers.ListAppointments)
		appointments.PUT("/:id", controllers.UpdateAppointmentStatus)
		appointments.DELETE("/:id", controllers.DeleteAppointment)
	}

	alerts := r.Group("/alerts")
	alerts.Use(middlewares.AuthMiddleware())
	{
		alerts.GET("", controllers.ListAlerts)
	}

	rt := controllers.NewRealtimeController(hub)
	r.GET("/ws", middlewares.AuthMiddleware(), rt.AlertsWS)

	return r
}
