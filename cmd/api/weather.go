package main

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-app/internal/weather"
)

const invalidLocationMessage = "Invalid location. Please try again."

// SearchForm is the form posted by the index page
type SearchForm struct {
	Location string `form:"location" binding:"required"`
	DaysNum  int    `form:"days_num" binding:"required,min=1"`
}

// GetWeatherInput defines the query parameters for the weather endpoint
type GetWeatherInput struct {
	Location string `form:"location" binding:"required"`      // Free-text place name
	Days     int    `form:"days" binding:"required,min=1,max=16"` // Number of forecast days
}

// ErrorResponse is the body returned by the JSON API on failure
type ErrorResponse struct {
	Error string `json:"error" example:"location not found"`
	Kind  string `json:"kind" example:"location_not_found"`
}

// indexData builds the template context shared by every render of the page
func (app *App) indexData() gin.H {
	days := make([]int, 0, app.cfg.App.MaxForecastDays)
	for d := 1; d <= app.cfg.App.MaxForecastDays; d++ {
		days = append(days, d)
	}
	return gin.H{
		"bg_color":    template.CSS(app.cfg.App.BgColor), // checked by config validation
		"day_options": days,
		"location":    "",
	}
}

func (app *App) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", app.indexData())
}

// handleSearch runs a query from the form. Every failure is shown to the
// user as the same message; the specific kind is only logged.
func (app *App) handleSearch(c *gin.Context) {
	data := app.indexData()

	var form SearchForm
	if err := c.ShouldBind(&form); err != nil {
		app.logger.Error("invalid search form", "error", err)
		data["error"] = invalidLocationMessage
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	data["location"] = form.Location

	records, err := app.weatherService.GetWeather(c.Request.Context(), form.Location, form.DaysNum)
	if err != nil {
		app.logger.Error("unexpected error for the location",
			"location", form.Location,
			"kind", weather.ErrorKind(err),
			"error", err,
		)
		data["error"] = invalidLocationMessage
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	data["data"] = records
	c.HTML(http.StatusOK, "index.html", data)
}

// handleGetWeather godoc
// @Summary Get a daily forecast
// @Description Resolve a place name and return one record per forecast day with averaged humidity
// @Tags weather
// @Produce json
// @Param location query string true "Place name" example(Haifa)
// @Param days query int true "Number of forecast days" minimum(1) maximum(16) example(3)
// @Success 200 {array} weather.PresentationRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: weather.KindInvalidQuery})
		return
	}

	// Delegate to business layer
	records, err := app.weatherService.GetWeather(c.Request.Context(), input.Location, input.Days)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error(), Kind: weather.ErrorKind(err)})
		return
	}

	c.JSON(http.StatusOK, records)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, weather.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, weather.ErrForecastFetch),
		errors.Is(err, weather.ErrMalformedResponse),
		errors.Is(err, weather.ErrInsufficientData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
