package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"snippet-blog/internal/auth"
	"snippet-blog/internal/domain"
	"snippet-blog/internal/store"
)

const principalKey = "principal"

// Handler wires HTTP routes to the credential, token and snippet components.
type Handler struct {
	credentials *store.CredentialStore
	snippets    *store.SnippetStore
	tokens      *auth.TokenService
	logger      *logrus.Logger
}

func NewHandler(credentials *store.CredentialStore, snippets *store.SnippetStore, tokens *auth.TokenService, logger *logrus.Logger) *Handler {
	return &Handler{
		credentials: credentials,
		snippets:    snippets,
		tokens:      tokens,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(h.requestLogger())

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("My Example Blog"))
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.POST("/login-register", h.loginRegister)

	snippets := router.Group("/snippets")
	{
		snippets.GET("", h.listSnippets)

		authed := snippets.Group("")
		authed.Use(h.authMiddleware())
		authed.POST("", h.createSnippet)
		authed.DELETE("", h.clearSnippets)
	}
}

type loginRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type snippetRequest struct {
	Snippet struct {
		Text string `json:"text" binding:"required"`
	} `json:"snippet" binding:"required"`
}

type snippetResponse struct {
	User string `json:"user"`
	Text string `json:"text"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	}
}

// authMiddleware verifies the bearer token and stores the authenticated
// username in the request context. Missing header, wrong scheme and failed
// verification all collapse into the same unauthorized response.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"OK": false, "error": "unauthorized"})
			return
		}

		principal, err := h.tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"OK": false, "error": "unauthorized"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func (h *Handler) loginRegister(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.credentials.LoginOrRegister(req.User, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"OK": false, "error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Sign(account.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) listSnippets(c *gin.Context) {
	snippets := h.snippets.List()

	resp := make([]snippetResponse, len(snippets))
	for i := range snippets {
		resp[i] = snippetToResponse(snippets[i])
	}
	c.JSON(http.StatusOK, gin.H{"snippets": resp})
}

func (h *Handler) createSnippet(c *gin.Context) {
	var req snippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The author is always the verified principal, never a body field.
	principal := c.GetString(principalKey)
	h.snippets.Append(principal, req.Snippet.Text)

	c.JSON(http.StatusOK, gin.H{"OK": true})
}

func (h *Handler) clearSnippets(c *gin.Context) {
	h.snippets.Clear()
	c.JSON(http.StatusOK, gin.H{"OK": true})
}

func snippetToResponse(s domain.Snippet) snippetResponse {
	return snippetResponse{
		User: s.Author,
		Text: s.Text,
	}
}
