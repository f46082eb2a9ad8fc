package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/cors"

	"alloggi/config"
	"alloggi/infras/otel"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	limiter *ipLimiter
}

func NewAppMiddleware(otl otel.Otel, cfg *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:    otl,
		config:  cfg,
		limiter: newIPLimiter(cfg.App.RateLimiter.RequestsPerSecond, cfg.App.RateLimiter.Burst),
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.UserAgent(),
			"http.host":       r.Host,
			"http.source":     r.RemoteAddr,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	corsCfg := a.config.App.CORS

	if !corsCfg.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowCredentials: corsCfg.AllowCredentials,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedOrigins:   corsCfg.AllowedOrigins,
		MaxAge:           corsCfg.MaxAgeSeconds,
	})(next)
}
