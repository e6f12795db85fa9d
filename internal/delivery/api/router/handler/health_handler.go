// Package handler contains the echo handlers for the API and the HTML pages.
package handler

import (
	"net/http"

	"sampleapp/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
