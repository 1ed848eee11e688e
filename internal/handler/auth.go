package handler

import (
	"time"

	"github.com/matthewmachida/yumis-bakery/internal/logger"
	"github.com/matthewmachida/yumis-bakery/internal/middleware"
	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/service"
	"github.com/matthewmachida/yumis-bakery/internal/store"
	"github.com/matthewmachida/yumis-bakery/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler serves signup, login and logout.
type AuthHandler struct {
	Accounts  *service.AccountService
	Store     store.Store
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(accounts *service.AccountService, st store.Store, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		Accounts:  accounts,
		Store:     st,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type signupReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Email    string `form:"email" json:"email"`
}

// Signup answers POST /newuser. New accounts start logged out.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBind(&req); err != nil {
		util.Fail(c, util.StatusNotFound)
		return
	}

	if err := h.Accounts.Create(req.Username, req.Password, req.Email); err != nil {
		fail(c, err)
		return
	}
	c.String(util.StatusSuccess, "Account created for "+req.Username)
}

type loginReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Login answers POST /login. The body stays plain text for compatibility;
// a session-backed token rides along in the X-Session-Token header for
// clients that want the authenticated surface.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBind(&req); err != nil || req.Username == "" || req.Password == "" {
		util.Fail(c, util.StatusNotFound)
		return
	}

	ok, err := h.Accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		util.Fail(c, util.StatusBadLogin)
		return
	}

	if token, err := h.issueSession(req.Username); err != nil {
		// the login itself succeeded; the token is best effort
		logger.Log.Warnw("issue session failed", "username", req.Username, "error", err)
	} else {
		c.Header("X-Session-Token", token)
	}

	c.String(util.StatusSuccess, req.Username+" logged in sucessfully")
}

func (h *AuthHandler) issueSession(username string) (string, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		Username:  username,
		ExpiresAt: time.Now().Add(h.TokenTTL),
	}
	if err := h.Store.CreateSession(&sess); err != nil {
		return "", err
	}
	return util.GenerateToken(h.JWTSecret, sess.ID, h.TokenTTL)
}

type logoutReq struct {
	Username string `form:"username" json:"username"`
}

// Logout answers POST /logout: clears the logged-in flag and revokes
// every session the user holds.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req logoutReq
	if err := c.ShouldBind(&req); err != nil || req.Username == "" {
		util.Fail(c, util.StatusNotFound)
		return
	}

	if err := h.Accounts.Logout(req.Username); err != nil {
		fail(c, err)
		return
	}
	c.String(util.StatusSuccess, req.Username+" logged out")
}

// Me answers GET /api/me for an authenticated session.
func Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Fail(c, util.StatusLoggedOut)
		return
	}
	c.JSON(util.StatusSuccess, gin.H{
		"username": user.Username,
		"email":    user.Email,
		"loggedin": user.LoggedIn,
	})
}
