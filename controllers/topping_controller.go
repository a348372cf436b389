package controllers

import (
	"burgerhouse/pkg/resp"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

type ToppingController struct {
	svc *services.ToppingService
}

func NewToppingController(svc *services.ToppingService) *ToppingController {
	return &ToppingController{svc: svc}
}

// GET /toppings?page&limit&available=true
func (tc *ToppingController) List(c *gin.Context) {
	page := utils.QueryInt(c, "page", 1)
	limit := utils.QueryInt(c, "limit", 0)
	items, total, err := tc.svc.List(page, limit, c.Query("available") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	resp.Page(c, mapSlice(items, toTopping), resp.Meta{Total: total, Page: page, Limit: limit})
}

// GET /toppings/:name
func (tc *ToppingController) Get(c *gin.Context) {
	p, err := tc.svc.Get(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toTopping(p))
}

// POST /toppings
func (tc *ToppingController) Create(c *gin.Context) {
	var in services.ToppingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := tc.svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toTopping(p))
}

// PUT /toppings/:name
func (tc *ToppingController) Update(c *gin.Context) {
	var in services.ToppingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := tc.svc.Update(c.Param("name"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toTopping(p))
}

// DELETE /toppings/:name
func (tc *ToppingController) Delete(c *gin.Context) {
	if err := tc.svc.Delete(c.Param("name")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
