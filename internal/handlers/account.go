package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medialist/api/internal/apperr"
	"medialist/api/internal/middleware"
	"medialist/api/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h HandlerSet) RegisterAccount(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, msgCheckData)
		return
	}

	profile, token, err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": profile, "token": token})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, msgLoginFailed)
		return
	}

	profile, token, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile, "token": token})
}

func (h HandlerSet) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}
	token := c.GetString(middleware.ContextTokenKey)

	if err := h.accounts.Logout(c.Request.Context(), user, token); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("logout failed")
		c.JSON(http.StatusInternalServerError, msgServerError)
		return
	}

	c.Status(http.StatusOK)
}

func (h HandlerSet) LogoutAll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	if err := h.accounts.LogoutAll(c.Request.Context(), user); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("logout all failed")
		c.JSON(http.StatusInternalServerError, msgServerError)
		return
	}

	c.Status(http.StatusOK)
}

func (h HandlerSet) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	profile, err := h.accounts.Profile(c.Request.Context(), user)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// UpdateAccount applies the updates to the authenticated user; the :id path
// segment is accepted for client compatibility but never trusted.
func (h HandlerSet) UpdateAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, msgCheckData)
		return
	}

	profile, err := h.accounts.Update(c.Request.Context(), user, fields)
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, msgUsernameTaken)
			return
		}
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

func (h HandlerSet) DeleteAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	if err := h.accounts.Delete(c.Request.Context(), user); err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("account delete failed")
		c.JSON(http.StatusBadRequest, msgCannotDelete)
		return
	}

	c.JSON(http.StatusOK, msgDeleted)
}
