package routes

import (
	"photostudio-backend/config"
	"photostudio-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	// Client routes
	clients := r.Group("/clients")
	{
		clients.POST("", controllers.CreateClient)
		clients.GET("", controllers.GetClients)
		clients.GET("/:id", controllers.GetClient)
		clients.PUT("/:id", controllers.UpdateClient)
		clients.DELETE("/:id", controllers.DeleteClient)
	}

	// Shoot routes
	shoots := r.Group("/shoots")
	{
		shoots.POST("", controllers.CreateShoot)
		shoots.GET("", controllers.GetShoots)
		shoots.GET("/:id", controllers.GetShoot)
		shoots.PUT("/:id", controllers.UpdateShoot)
		shoots.DELETE("/:id", controllers.DeleteShoot)
	}

	// Package routes
	packages := r.Group("/packages")
	{
		packages.POST("", controllers.CreatePackage)
		packages.GET("", controllers.GetPackages)
		packages.GET("/:id", controllers.GetPackage)
		packages.PUT("/:id", controllers.UpdatePackage)
		packages.DELETE("/:id", controllers.DeletePackage)
	}

	// Invoice routes
	invoices := r.Group("/invoices")
	{
		invoices.POST("", controllers.CreateInvoice)
		invoices.GET("", controllers.GetInvoices)
		invoices.GET("/:id", controllers.GetInvoice)
		invoices.PUT("/:id", controllers.UpdateInvoice)
		invoices.DELETE("/:id", controllers.DeleteInvoice)
		invoices.GET("/:id/summary", controllers.GetInvoiceSummary)
	}

	// Payment routes
	payments := r.Group("/payments")
	{
		payments.POST("", controllers.CreatePayment)
		payments.GET("", controllers.GetPayments)
		payments.GET("/:id", controllers.GetPayment)
		payments.DELETE("/:id", controllers.DeletePayment)
	}

	// Report routes (read only)
	reportController := controllers.ReportController{}
	r.GET("/reports/invoices", reportController.GetInvoiceReport)

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "service": "photostudio-backend"})
	})

	return r
}
