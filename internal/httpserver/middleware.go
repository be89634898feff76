package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/internal/handler"
	"github.com/heishia/bluroutine/internal/service"
	"github.com/heishia/bluroutine/pkg/config"
	"github.com/heishia/bluroutine/pkg/logger"
	"github.com/heishia/bluroutine/pkg/metrics"
	"github.com/heishia/bluroutine/pkg/trace"
	"github.com/heishia/bluroutine/pkg/util"
)

// AuthMiddleware resolves the bearer token to a live user and stores it in
// the gin context.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := authService.ResolveToken(c.Request.Context(), util.ExtractToken(c.Request))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "인증 토큰이 유효하지 않습니다"})
			c.Abort()
			return
		}

		c.Set(handler.UserKey, u)
		c.Next()
	}
}

// TraceMiddleware 复用或生成 X-Trace-ID，并写回响应头
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(trace.HeaderName)
		if traceID == "" {
			traceID = trace.GenerateTraceID()
		}
		c.Request = c.Request.WithContext(trace.WithContext(c.Request.Context(), traceID))
		c.Header(trace.HeaderName, traceID)
		c.Next()
	}
}

// RequestLogMiddleware 每个请求记录一条日志并上报耗时
func RequestLogMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, route, strconv.Itoa(status), latency)

		logger.WithTrace(c.Request.Context(), log).Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// CORSMiddleware allows the configured origins with credentials and any
// request header: a preflight gets its Access-Control-Request-Headers echoed
// back. It returns nil when no origin is configured.
func CORSMiddleware(cfg config.CORSConfig) (gin.HandlerFunc, error) {
	if len(cfg.AllowedOrigins) == 0 {
		return nil, nil
	}

	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders:    []string{trace.HeaderName},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			// credentials with a wildcard origin: echo the caller's origin
			cc.AllowOriginFunc = func(string) bool { return true }
			cc.AllowOrigins = nil
			break
		}
		cc.AllowOrigins = append(cc.AllowOrigins, o)
	}

	if err := cc.Validate(); err != nil {
		return nil, err
	}
	allowed := cors.New(cc)
	return func(c *gin.Context) {
		// cors 不写 Allow-Headers（AllowHeaders 为空），由这里回显
		if c.Request.Method == http.MethodOptions {
			if h := c.GetHeader("Access-Control-Request-Headers"); h != "" {
				c.Header("Access-Control-Allow-Headers", h)
			}
		}
		allowed(c)
	}, nil
}
