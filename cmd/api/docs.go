package main

// @title Weather App API
// @version 1.0
// @description Daily forecasts from Open-Meteo with averaged humidity, plus a log of past queries.

// @contact.name API Support

// @license.name MIT

// @host localhost:5000
// @BasePath /
// @schemes http
