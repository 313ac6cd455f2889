package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

// SessionChecker reports whether the session behind a token is still open.
type SessionChecker interface {
	Active(ctx context.Context, sessionID string) (bool, error)
}

func JwtAuthentication(tokens *auth.Manager, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(AuthorizationHeader)
			if authorization == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No Authorization Header")
			}
			if !strings.HasPrefix(authorization, bearer) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
			}
			claims, err := tokens.Parse(strings.TrimPrefix(authorization, bearer))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
			}

			req := c.Request()
			ok, err := sessions.Active(req.Context(), claims.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
			}
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session expired or invalid")
			}

			ctx := auth.SetAuthContext(req.Context(), claims.Profile, claims.ID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, err := auth.GetProfile(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			for _, role := range roles {
				if profile.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		}
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

// Metrics records request count and latency labelled by the matched route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			metrics.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
