package router

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "teamacy_backend/internal/feature/auth/transport/handler"
	msghandler "teamacy_backend/internal/feature/messages/transport/handler"
	"teamacy_backend/internal/platform/http/handler"
	jwtmw "teamacy_backend/internal/platform/jwt"
)

// NewRouter builds the route table.
//
// Public: health check, signup, the two login variants and message
// submission (submissions are anonymous, no token is read). Admin: the
// inbox listing, behind AuthRequired plus AdminRequired so auth failures
// short-circuit before any business logic.
func NewRouter(auth *authhandler.AuthHandler, messages *msghandler.MessageHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(corsConfig()))

	r.GET("/healthz", handler.Health)

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/admin/login", auth.AdminLogin)

	r.POST("/messages", messages.Submit)

	admin := r.Group("/")
	admin.Use(jwtmw.AuthRequired(), jwtmw.AdminRequired())
	{
		admin.GET("/messages", messages.List)
	}

	return r
}

// corsConfig allows the configured browser origins, or any origin when
// CORS_ORIGINS is unset (the form is public anyway).
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
