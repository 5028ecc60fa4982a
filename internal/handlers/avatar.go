package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"medialist/api/internal/apperr"
)

func (h HandlerSet) UploadAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, msgCheckData)
		return
	}
	defer file.Close()

	// Size gate runs on the declared size before the body is read or decoded.
	if header.Size > h.cfg.Avatar.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, msgFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, msgCheckData)
		return
	}

	if err := h.avatars.Set(c.Request.Context(), user, header.Filename, data); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, msgAvatarSaved)
}

// GetAvatar is the only public lookup; the :id path segment carries a
// username. A missing user and an unset avatar yield the same body.
func (h HandlerSet) GetAvatar(c *gin.Context) {
	username := c.Param("id")

	data, err := h.avatars.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) || errors.Is(err, apperr.ErrAvatarNotFound) {
			c.JSON(http.StatusNotFound, msgAvatarNotFound)
			return
		}
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

func (h HandlerSet) ClearAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	if err := h.avatars.Clear(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusBadRequest, statusMessage{400, "Avatar not removed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Succesful"})
}
