package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all endpoints
func (app *App) registerRoutes() {
	// Web page
	app.router.GET("/", app.handleIndex)
	app.router.POST("/", app.handleSearch)

	// Health check endpoints
	app.router.GET("/health", app.handleHealth)
	app.router.GET("/ping", app.handlePing)

	// Query history
	app.router.GET("/history", app.handleDownloadHistory)

	// JSON API
	v1 := app.router.Group("/api/v1")
	v1.GET("/weather", app.handleGetWeather)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
