package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h HandlerSet) AddFavorite(c *gin.Context) {
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

	if err := h.favorites.Add(c.Request.Context(), user, fields); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, msgAdded)
}

func (h HandlerSet) ListFavorites(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	favourites, err := h.favorites.List(c.Request.Context(), user, c.Query("type"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favourites": favourites})
}

type removeFavoriteRequest struct {
	TmdbID string `json:"tmdbID"`
	Type   string `json:"type"`
}

func (h HandlerSet) RemoveFavorite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		h.unauthorized(c)
		return
	}

	var req removeFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, msgCheckData)
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), user, req.TmdbID, req.Type); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, msgRemoved)
}
