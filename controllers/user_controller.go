package controllers

import (
	"net/http"

	"burgerhouse/pkg/resp"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

// UserController is the admin user screen. Users are addressed by email.
type UserController struct {
	svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /users?limit answers with a bare array, no envelope.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.svc.List(utils.QueryInt(c, "limit", 0))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(users, toUser))
}

func (uc *UserController) Get(c *gin.Context) {
	u, err := uc.svc.Get(c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toUser(u))
}

func (uc *UserController) Create(c *gin.Context) {
	var in services.UserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := uc.svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toUser(u))
}

func (uc *UserController) Update(c *gin.Context) {
	var in services.UserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := uc.svc.Update(c.Param("email"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toUser(u))
}

func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.svc.Delete(utils.CurrentUserID(c), c.Param("email")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
