package middleware

import (
	"sampleapp/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// UnitOfWorkMiddleware opens one unit-of-work scope per request, so the
// entities a handler loads and the changes it saves never leak into another request.
type UnitOfWorkMiddleware struct {
	scopes repository.ScopeFactory
}

// NewUnitOfWorkMiddleware creates a new unit-of-work scope middleware
func NewUnitOfWorkMiddleware(scopes repository.ScopeFactory) *UnitOfWorkMiddleware {
	return &UnitOfWorkMiddleware{
		scopes: scopes,
	}
}

// Process attaches a fresh scope to the request context
func (m *UnitOfWorkMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := m.scopes.NewScope(c.Request().Context())
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
