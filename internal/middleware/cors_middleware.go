package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"prodrawing-backend-go/internal/config"
)

// CORS configures cross-origin access for the web frontend. With no
// CLIENT_URL configured all origins are allowed, matching the original
// open CORS policy of the service.
func CORS(appConfig *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if appConfig.ClientURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.ClientURL}
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	return cors.New(corsConfig)
}
