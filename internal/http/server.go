package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"habit-tracker-go/internal/config"
	"habit-tracker-go/internal/logger"
	"habit-tracker-go/internal/metrics"
	"habit-tracker-go/internal/tracker"
)

type Server struct {
	cfg     *config.Config
	tracker *tracker.Service
	schemas map[string]*gojsonschema.Schema
}

func NewServer(cfg *config.Config, svc *tracker.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging())
	r.Use(metrics.Middleware())
	r.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	schemas, err := loadSchemas()
	if err != nil {
		panic(err)
	}

	s := &Server{cfg: cfg, tracker: svc, schemas: schemas}

	api := r.Group("/")
	api.Use(IdentityMiddleware(svc))
	{
		api.GET("/users/me", s.getMe)
		api.POST("/friends/add/:friend_code", s.addFriend)
		api.GET("/leaderboard", s.leaderboard)

		api.GET("/habits", s.listHabits)
		api.POST("/habits", s.createHabit)
		api.PATCH("/habits/:id", s.updateHabit)
		api.POST("/toggle", s.toggle)
		api.GET("/dashboard/:year/:month", s.dashboard)
		api.GET("/logs/:month", s.monthLogs)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

// requestContext bounds a handler's store work by REQUEST_TIMEOUT_SECONDS.
func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), time.Duration(s.cfg.ReqTimeoutSec)*time.Second)
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PATCH, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("requestID", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", reqID,
		)
	}
}
