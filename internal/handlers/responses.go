package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medialist/api/internal/apperr"
	"medialist/api/internal/middleware"
	"medialist/api/internal/models"
)

// statusMessage is the fixed error/ack envelope. The message strings match
// the wire format of the original client contract verbatim, typos included.
type statusMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	msgServerError      = statusMessage{500, "Server Error"}
	msgCheckData        = statusMessage{400, "Check your data"}
	msgUserExists       = statusMessage{1001, "User already exists!"}
	msgUsernameTaken    = statusMessage{1001, "Username taken"}
	msgLoginFailed      = statusMessage{400, "Login failed!"}
	msgUnknownField     = statusMessage{400, "Field not updatable or doesn't exist"}
	msgUserNotFound     = statusMessage{404, "User not found"}
	msgInvalidMediaType = statusMessage{400, "Type can be 'movie' or 'tv' only"}
	msgAlreadyAdded     = statusMessage{400, "Already added"}
	msgSpacesNotAllowed = statusMessage{603, "Spaces not allowed"}
	msgAdded            = statusMessage{200, "Added"}
	msgRemoved          = statusMessage{200, "Removed"}
	msgDeleted          = statusMessage{101, "Deleted!"}
	msgCannotDelete     = statusMessage{99, "Cannot deleted!"}
	msgAvatarSaved      = statusMessage{200, "Avatar saved"}
	msgAvatarNotFound   = statusMessage{404, "Image not fond!"}
	msgUnsupportedFile  = statusMessage{400, "Not a suppported file!"}
	msgFileTooLarge     = statusMessage{400, "File too large"}
	msgBadImage         = statusMessage{400, "Unable to process image"}
)

// fail translates a service error into its fixed response body. Handlers
// with endpoint-specific bodies intercept before calling this.
func (h HandlerSet) fail(c *gin.Context, err error) {
	status, body := http.StatusBadRequest, msgCheckData

	switch {
	case errors.Is(err, apperr.ErrValidation):
	case errors.Is(err, apperr.ErrDuplicateUsername):
		body = msgUserExists
	case errors.Is(err, apperr.ErrLoginFailed):
		body = msgLoginFailed
	case errors.Is(err, apperr.ErrUnknownField):
		body = msgUnknownField
	case errors.Is(err, apperr.ErrInvalidType):
		body = msgInvalidMediaType
	case errors.Is(err, apperr.ErrAlreadyFavorited):
		body = msgAlreadyAdded
	case errors.Is(err, apperr.ErrInvalidIdentifier):
		body = msgSpacesNotAllowed
	case errors.Is(err, apperr.ErrUserNotFound):
		status, body = http.StatusNotFound, msgUserNotFound
	case errors.Is(err, apperr.ErrAvatarNotFound):
		status, body = http.StatusNotFound, msgAvatarNotFound
	case errors.Is(err, apperr.ErrUnsupportedMedia):
		body = msgUnsupportedFile
	case errors.Is(err, apperr.ErrTooLarge):
		body = msgFileTooLarge
	case errors.Is(err, apperr.ErrBadImage):
		body = msgBadImage
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		status, body = http.StatusInternalServerError, msgServerError
	}

	c.JSON(status, body)
}

// currentUser reads the acting user attached by the auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}

func (h HandlerSet) unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, statusMessage{401, "Please authenticate"})
}
