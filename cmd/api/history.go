package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-app/internal/history"
)

const historyFileName = "weather_history.json"

// handleDownloadHistory godoc
// @Summary Download query history
// @Description Every successful query, oldest first, as a JSON attachment
// @Tags history
// @Produce json
// @Success 200 {array} history.Entry
// @Failure 404 {string} string "No history found."
// @Failure 500 {string} string "Failed to read history."
// @Router /history [get]
func (app *App) handleDownloadHistory(c *gin.Context) {
	entries, err := app.history.List(c.Request.Context())
	if err != nil {
		app.logger.Error("failed to read history", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read history.")
		return
	}

	if len(entries) == 0 {
		c.String(http.StatusNotFound, "No history found.")
		return
	}

	b, err := history.Encode(entries)
	if err != nil {
		app.logger.Error("failed to encode history", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read history.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+historyFileName+`"`)
	c.Data(http.StatusOK, "application/json", b)
}
