package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/middleware"
	"mall-backend/internal/user"
	"mall-backend/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates a user; the username must be a six-digit account number.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     201 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "用户名必须是6位数字")
		return
	}

	out, err := h.uc.Register(ctx, user.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUsername):
			response.BadRequest(c, "用户名必须是6位数字")
		case errors.Is(err, user.ErrInvalidPassword):
			response.BadRequest(c, "密码长度需在1-20个字符之间")
		case errors.Is(err, user.ErrUserExists):
			response.BadRequest(c, "用户名已存在")
		default:
			h.l.Errorf(ctx, "uc.Register: %v", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, registerResp{
		Status:  response.StatusSuccess,
		Message: "用户创建成功",
		UserID:  out.UserID,
	})
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, "无效的用户名或密码")
		return
	}

	out, err := h.uc.Login(ctx, user.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c, "无效的用户名或密码")
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, loginResp{
		Status:      response.StatusSuccess,
		AccessToken: out.AccessToken,
		UserID:      out.UserID,
		Username:    out.Username,
	})
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the presented token until its natural expiry.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Security    BearerAuth
// @Router      /api/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	err := h.uc.Logout(ctx, sc, user.TokenInfo{
		JTI:       claims.JTI,
		ExpiresAt: claims.ExpiresAt,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, response.Resp{Status: response.StatusSuccess, Message: "退出成功"})
}

// Verify godoc
// @Summary     Verify token
// @Description Confirms the bearer token is valid and returns the account it belongs to.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} verifyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    BearerAuth
// @Router      /api/verify [GET]
func (h *handler) Verify(c *gin.Context) {
	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未授权")
		return
	}

	response.OK(c, verifyResp{
		Status:   response.StatusSuccess,
		UserID:   sc.UserID,
		Username: sc.Username,
	})
}
