package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Meta rides next to a paged list.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page,omitempty"`
	Limit int   `json:"limit,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func Page(c *gin.Context, data any, meta Meta) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data, "meta": meta})
}
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Errors carry "message"; clients show it verbatim.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "message": msg})
}
func BadRequest(c *gin.Context, msg string)   { Error(c, http.StatusBadRequest, msg) }
func Unauthorized(c *gin.Context, msg string) { Error(c, http.StatusUnauthorized, msg) }
func Forbidden(c *gin.Context, msg string)    { Error(c, http.StatusForbidden, msg) }
func NotFound(c *gin.Context, msg string)     { Error(c, http.StatusNotFound, msg) }
func Conflict(c *gin.Context, msg string)     { Error(c, http.StatusConflict, msg) }
func ServerError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
