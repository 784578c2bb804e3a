package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"sitecheck/middleware"
	"sitecheck/model"
	"sitecheck/service"

	"github.com/gin-gonic/gin"
)

// RespondError translates a service error into an HTTP response. Validation
// failures become 400, missing or unowned resources 404, everything else is a
// 500 whose internals are logged but not leaked to the caller.
func RespondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"requestId", c.GetString(middleware.ContextRequestID),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// EnsureRequester resolves the authenticated identity to a user row, creating
// it on first contact. Used by write handlers. Returns false after writing
// the error response.
func EnsureRequester(c *gin.Context, users *service.UserService) (model.User, bool) {
	u, err := users.EnsureUser(c.Request.Context(),
		c.GetString(middleware.ContextAuthUID),
		c.GetString(middleware.ContextUserName))
	if err != nil {
		RespondError(c, err)
		return model.User{}, false
	}
	return u, true
}

// LookupRequester resolves the authenticated identity without creating a
// user row. Read handlers treat a missing row as "owns nothing". The second
// result reports whether the row exists; the third is false when an error
// response was already written.
func LookupRequester(c *gin.Context, users *service.UserService) (model.User, bool, bool) {
	u, found, err := users.Lookup(c.Request.Context(), c.GetString(middleware.ContextAuthUID))
	if err != nil {
		RespondError(c, err)
		return model.User{}, false, false
	}
	return u, found, true
}

// PathID parses a numeric path parameter, responding 400 on garbage.
func PathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
