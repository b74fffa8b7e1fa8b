// Package kitchenauth guards the staff-only HTTP endpoints with a shared
// kitchen token. The check is a chain of links evaluated in a fixed order:
// endpoint scope first, then token presence, then token value. Each link
// either settles the request or hands it to the next one, so the scope rule
// is decided exactly once and the two failure modes stay distinct.
package kitchenauth

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrAuthenticationRequired indicates the request hit a protected
	// endpoint without presenting a kitchen token.
	ErrAuthenticationRequired = errors.New("kitchen token required")

	// ErrAuthorizationDenied indicates the presented kitchen token does not
	// match the configured one.
	ErrAuthorizationDenied = errors.New("kitchen token rejected")
)

// AccessRequest is the slice of an HTTP request the chain decides on.
type AccessRequest struct {
	Method string
	Path   string
	Token  string
}

// Link is one gate of the access chain. Authorize returns done=true to admit
// the request immediately, an error to reject it, or (false, nil) to
// delegate the decision to the next link.
type Link interface {
	Authorize(req AccessRequest) (done bool, err error)
}

// Chain evaluates its links in order. The link slice is fixed at
// construction, the chain itself is stateless and safe for concurrent use.
type Chain struct {
	links []Link
}

// NewChain builds a chain from the given links, evaluated in argument order.
func NewChain(links ...Link) *Chain {
	return &Chain{links: links}
}

// NewKitchenGate assembles the standard chain for the given token:
// unprotected endpoints pass untouched, protected ones need the exact token.
func NewKitchenGate(token string) *Chain {
	return NewChain(
		EndpointScopeLink{},
		TokenPresenceLink{},
		TokenValueLink{Token: token},
	)
}

// Authorize runs the request through the chain. A request every link
// delegates on is admitted.
func (c *Chain) Authorize(req AccessRequest) error {
	for _, link := range c.links {
		done, err := link.Authorize(req)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// EndpointScopeLink admits every request outside the protected surface.
// Protected are the staff operations: listing orders, deleting one or all
// orders, and moving an order through the kitchen workflow. CORS preflights
// always pass regardless of path.
type EndpointScopeLink struct{}

func (EndpointScopeLink) Authorize(req AccessRequest) (bool, error) {
	method := strings.ToUpper(req.Method)
	if method == http.MethodOptions {
		return true, nil
	}
	return !isProtected(method, req.Path), nil
}

// TokenPresenceLink rejects protected requests that carry no token.
// A blank token counts as absent.
type TokenPresenceLink struct{}

func (TokenPresenceLink) Authorize(req AccessRequest) (bool, error) {
	if strings.TrimSpace(req.Token) == "" {
		return false, ErrAuthenticationRequired
	}
	return false, nil
}

// TokenValueLink compares the presented token with the configured one.
// The comparison is exact and case sensitive.
type TokenValueLink struct {
	Token string
}

func (l TokenValueLink) Authorize(req AccessRequest) (bool, error) {
	if req.Token != l.Token {
		return false, ErrAuthorizationDenied
	}
	return true, nil
}

// isProtected reports whether the method and path combination belongs to the
// staff-only surface. Path parameters match one non-empty segment, so
// "/orders/123/items" is outside the surface while "/orders/123" is on it.
func isProtected(method, path string) bool {
	switch method {
	case http.MethodGet:
		return path == "/orders"
	case http.MethodDelete:
		return path == "/orders" || isSingleOrderPath(path)
	case http.MethodPatch:
		return isOrderStatusPath(path)
	default:
		return false
	}
}

func isSingleOrderPath(path string) bool {
	rest, ok := strings.CutPrefix(path, "/orders/")
	return ok && rest != "" && !strings.Contains(rest, "/")
}

func isOrderStatusPath(path string) bool {
	rest, ok := strings.CutPrefix(path, "/orders/")
	if !ok {
		return false
	}
	id, ok := strings.CutSuffix(rest, "/status")
	return ok && id != "" && !strings.Contains(id, "/")
}
