package handlers

import (
	"net/http"
	"time"

	"postboard"
	_ "postboard/docs"
	"postboard/internal/logger"
	"postboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes the HTTP layer.
type Options struct {
	CookieName     string        // session cookie name
	CookieTTL      time.Duration // session cookie lifetime
	SecureCookie   bool          // set the Secure flag on the session cookie
	RequestLogging bool          // log every request
	FeedInterval   time.Duration // default websocket feed interval
	FeedLimit      int           // default number of posts per feed message
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		CookieName:   "token",
		CookieTTL:    30 * 24 * time.Hour,
		FeedInterval: defaultInterval,
		FeedLimit:    defaultFeedLimit,
	}
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	def := DefaultOptions()
	if opts.CookieName == "" {
		opts.CookieName = def.CookieName
	}
	if opts.CookieTTL <= 0 {
		opts.CookieTTL = def.CookieTTL
	}
	if opts.FeedInterval <= 0 || opts.FeedInterval > maxInterval {
		opts.FeedInterval = def.FeedInterval
	}
	if opts.FeedLimit <= 0 || opts.FeedLimit > maxFeedLimit {
		opts.FeedLimit = def.FeedLimit
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	if h.opts.RequestLogging {
		router.Use(h.requestLogger)
	}
	// errorMiddleware wraps recovery so recovered panics render as envelopes too
	router.Use(h.errorMiddleware, gin.CustomRecovery(h.recoverPanic))
	router.NoRoute(h.routeNotFound)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Live feed (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	api := router.Group("/api/v1")
	{
		h.registerAuthRoutes(api)
		h.registerUserRoutes(api)
		h.registerPostRoutes(api)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.protect, h.me)
		auth.GET("/logout", h.logout)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/:id", h.getUser)
	}
}

func (h *Handler) registerPostRoutes(api *gin.RouterGroup) {
	posts := api.Group("/posts")
	{
		posts.GET("", h.getPosts)
		posts.POST("", h.protect, h.createPost)
		posts.GET("/:id", h.getPost)
		posts.PUT("/:id", h.protect, h.updatePost)
		posts.DELETE("/:id", h.protect, h.deletePost)
	}
}

// @Summary      Health check
// @Description  Reports whether the API can reach its database.
// @Tags         system
// @Produce      json
// @Success      200  {object}  postboard.Response
// @Failure      500  {object}  postboard.Response
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if err := h.services.Health.Check(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postboard.OK(gin.H{"status": "ok"}))
}
