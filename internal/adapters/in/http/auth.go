package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"cafeteria/internal/core/application/usecases/queries"
	"cafeteria/internal/core/domain/model/user"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/session"

	"github.com/labstack/echo/v4"
)

const (
	sessionContextKey      = "cafeteria.session"
	sessionErrorContextKey = "cafeteria.session_error"
)

// authSession is a verified token together with the stored user it belongs to.
type authSession struct {
	token session.Token
	user  queries.UserView
}

// Actor is built from the stored user, so a role change applies to tokens
// issued before it.
func (s authSession) Actor() user.Actor {
	return s.user.Actor()
}

// SessionMiddleware resolves the session token of a request, if any. Public
// operations still run when the token is bad; operations that need a
// session report the remembered failure through requireSession.
func (s *Server) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c.Request())
			if raw == "" {
				return next(c)
			}

			sess, err := s.resolveSession(c.Request().Context(), raw)
			switch {
			case errors.Is(err, errs.ErrUnauthenticated):
				c.Set(sessionErrorContextKey, err)
			case err != nil:
				return err
			default:
				c.Set(sessionContextKey, sess)
			}

			return next(c)
		}
	}
}

func (s *Server) resolveSession(ctx context.Context, raw string) (authSession, error) {
	token, err := s.sessions.Parse(raw)
	if err != nil {
		return authSession{}, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, token.ID)
	if err != nil {
		return authSession{}, err
	}
	if revoked {
		return authSession{}, errs.NewUnauthenticatedError("session has been revoked")
	}

	u, err := s.handlers.GetUser.Handle(ctx, token.Actor.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return authSession{}, errs.NewUnauthenticatedError("user no longer exists")
	}
	if err != nil {
		return authSession{}, err
	}
	if !u.Active {
		return authSession{}, errs.NewUnauthenticatedError("user is deactivated")
	}

	return authSession{token: token, user: u}, nil
}

func requireSession(c echo.Context) (authSession, error) {
	if sess, ok := c.Get(sessionContextKey).(authSession); ok {
		return sess, nil
	}
	if err, ok := c.Get(sessionErrorContextKey).(error); ok {
		return authSession{}, err
	}
	return authSession{}, errs.NewUnauthenticatedError("authentication required")
}

func requireAdmin(c echo.Context, action string) (authSession, error) {
	sess, err := requireSession(c)
	if err != nil {
		return authSession{}, err
	}
	if !sess.Actor().IsAdmin() {
		return authSession{}, errs.NewForbiddenError(action)
	}
	return sess, nil
}

// tokenFromRequest prefers a bearer token over the session cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (s *Server) sessionCookie(token session.Token) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    token.Raw,
		Path:     "/",
		Expires:  token.ExpiresAt,
		MaxAge:   int(time.Until(token.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
