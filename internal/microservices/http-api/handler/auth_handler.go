package handler

import (
	"net/http"
	"time"

	"fightcard/internal/microservices/http-api/dto"
	"fightcard/internal/microservices/http-api/middleware"
	"fightcard/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type AuthHandler struct {
	authService  service.AuthService
	cookieTTL    time.Duration
	secureCookie bool

	// runs before register and login
	credentialChain []gin.HandlerFunc
}

func NewAuthHandler(authService service.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieTTL:    cookieTTL,
		secureCookie: secureCookie,
	}
}

// LimitCredentials throttles register and login, the routes that check
// passwords. Call before RegisterRoutes.
func (h *AuthHandler) LimitCredentials(limiter *rate.Limiter) {
	h.credentialChain = []gin.HandlerFunc{middleware.RateLimit(limiter)}
}

// RegisterRoutes registers account routes. The write group is unused:
// /user is a read and stays outside the write rate limit.
func (h *AuthHandler) RegisterRoutes(public, _ *gin.RouterGroup) {
	public.POST("/register", h.withCredentialChain(h.Register)...)
	public.POST("/login", h.withCredentialChain(h.Login)...)
	public.POST("/logout", h.Logout)
	public.GET("/user", middleware.RequireViewer(), h.Me)
}

// Register creates an account and logs it in. Without a token (session
// store down) the account still exists and no cookie is set.
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if token != "" {
		h.setSessionCookie(c, token, int(h.cookieTTL.Seconds()))
	}
	c.JSON(http.StatusCreated, dto.FromModelToUserResponse(user))
}

// Login opens a session
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.cookieTTL.Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// Logout revokes the presented session, if any, and clears the cookie
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated account
// GET /api/user
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) withCredentialChain(final gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(h.credentialChain)+1)
	chain = append(chain, h.credentialChain...)
	return append(chain, final)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.secureCookie, true)
}
