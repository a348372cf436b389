package controllers

import (
	"net/http"
	"time"

	"burgerhouse/pkg/resp"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenCookie is readable by page scripts; clients also keep the token
// themselves and send it as a bearer header.
const TokenCookie = "token"

type AuthController struct {
	svc       *services.AuthService
	cookieTTL time.Duration
}

func NewAuthController(svc *services.AuthService, cookieTTL time.Duration) *AuthController {
	return &AuthController{svc: svc, cookieTTL: cookieTTL}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.svc.Register(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toUser(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := a.svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, token, int(a.cookieTTL.Seconds()), "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": toUser(user)})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, "", -1, "/", "", false, false)
	resp.OK(c, nil)
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toUser(user))
}
