package routes

import (
	"net/http"
	"strings"
	"time"

	"dreamwall/internal/handlers"
	"dreamwall/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup wires the handlers onto a gin engine. The gallery and generation
// routes are public; only the session lookup requires a token.
func Setup(posts *handlers.PostHandler, dalle *handlers.DalleHandler, auth *handlers.AuthHandler, jwtSecret string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the AI image gallery server"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := router.Group("/api/v1")

	v1.GET("/post", posts.ListPosts)
	v1.POST("/post", posts.CreatePost)
	v1.GET("/post/:id", posts.GetPost)
	v1.DELETE("/post/:id", posts.DeletePost)

	v1.GET("/dalle", dalle.Liveness)
	v1.POST("/dalle", dalle.Generate)

	v1.POST("/auth/signup", auth.Signup)
	v1.POST("/auth/login", auth.Login)
	v1.POST("/auth/google", auth.GoogleAuth)
	v1.GET("/auth/me", middleware.JWTAuth(jwtSecret), auth.Me)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Endpoint not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
