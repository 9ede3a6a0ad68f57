package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealth godoc
// @Summary Liveness probe
// @Description Returns OK while the process is serving requests
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
