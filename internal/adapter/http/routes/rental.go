package routes

import (
	"beachrent/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSession = "/session"
	PathBeaches = "/beaches"
)

func addRentalRoutes(
	rg *gin.RouterGroup,
	flowHandler *handlers.BookingFlowHandler,
	beachHandler *handlers.BeachHandler,
	orderHandler *handlers.OrderHandler,
	authHandler *handlers.AuthHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	beaches := rg.Group(PathBeaches)
	{
		beaches.GET("", beachHandler.ListBeaches)
		beaches.GET("/:beach_id", beachHandler.GetBeach)
		beaches.POST("/locate", beachHandler.LocateBeach)
	}

	rg.POST(PathSession, flowHandler.StartSession)

	session := rg.Group(PathSession + "/:session_id")
	{
		flow := session.Group("/flow")
		{
			flow.GET("", flowHandler.GetState)
			flow.POST("/next", flowHandler.Next)
			flow.POST("/back", flowHandler.Back)
			flow.POST("/goto", flowHandler.GoTo)
			flow.POST("/reset", flowHandler.Reset)
			flow.PUT("/beach", flowHandler.SetBeach)
			flow.PUT("/location", flowHandler.SetLocation)
			flow.PUT("/booking-type", flowHandler.SetBookingType)
			flow.PUT("/schedule", flowHandler.SetSchedule)
			flow.POST("/sizes/toggle", flowHandler.ToggleSize)
			flow.PUT("/sizes/quantity", flowHandler.SetQuantity)
			flow.PUT("/duration", flowHandler.SetDuration)
			flow.PUT("/payment-method", flowHandler.SetPaymentMethod)
			flow.PUT("/terms", flowHandler.SetTerms)
		}

		orders := session.Group("/orders")
		{
			orders.GET("", orderHandler.ListMine)
			orders.GET("/active", orderHandler.ListActive)
			orders.GET("/:order_id", orderHandler.GetOrder)
			orders.POST("", orderHandler.SubmitOrder)
			orders.POST("/:order_id/extend", orderHandler.ExtendOrder)
			orders.GET("/:order_id/countdown", orderHandler.Countdown)
		}

		auth := session.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/otp/send", authHandler.SendOTP)
			auth.POST("/otp/verify", authHandler.VerifyOTP)
			auth.POST("/logout", authHandler.Logout)
		}

		session.GET("/profile", authHandler.GetProfile)
		session.PATCH("/profile", authHandler.UpdateProfile)

		payments := session.Group("/payments")
		{
			payments.POST("/intent", paymentHandler.CreateIntent)
			payments.POST("/result", paymentHandler.RecordResult)
		}
	}
}
