package controllers

import (
	"errors"
	"log"

	"burgerhouse/pkg/resp"
	"burgerhouse/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto status codes. Anything unknown is a 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "Not found")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredential):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrToppingLimit),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrUnavailable),
		errors.Is(err, services.ErrBadRange),
		errors.Is(err, services.ErrInvalidInput):
		resp.BadRequest(c, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.ServerError(c, errors.New("internal server error"))
	}
}
