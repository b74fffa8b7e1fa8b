package kitchenauth

import (
	"github.com/labstack/echo/v4"
)

// DefaultTokenHeader is the header the kitchen token travels in when no
// other name is configured.
const DefaultTokenHeader = "X-Kitchen-Token"

// Middleware adapts the access chain to echo. Rejections surface as
// ErrAuthenticationRequired or ErrAuthorizationDenied and are turned into
// responses by the server's error handler.
func Middleware(chain *Chain, tokenHeader string) echo.MiddlewareFunc {
	if tokenHeader == "" {
		tokenHeader = DefaultTokenHeader
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			err := chain.Authorize(AccessRequest{
				Method: req.Method,
				Path:   req.URL.Path,
				Token:  req.Header.Get(tokenHeader),
			})
			if err != nil {
				return err
			}

			return next(ctx)
		}
	}
}
