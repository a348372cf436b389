package controllers

import (
	"burgerhouse/pkg/resp"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{svc: svc}
}

// GET /products?page&limit&available=true
func (pc *ProductController) List(c *gin.Context) {
	page := utils.QueryInt(c, "page", 1)
	limit := utils.QueryInt(c, "limit", 0)
	items, total, err := pc.svc.List(page, limit, c.Query("available") == "true")
	if err != nil {
		fail(c, err)
		return
	}
	resp.Page(c, mapSlice(items, toProduct), resp.Meta{Total: total, Page: page, Limit: limit})
}

// GET /products/:name
func (pc *ProductController) Get(c *gin.Context) {
	p, err := pc.svc.Get(c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toProduct(p))
}

// POST /products
func (pc *ProductController) Create(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.svc.Create(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toProduct(p))
}

// PUT /products/:name
func (pc *ProductController) Update(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := pc.svc.Update(c.Param("name"), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toProduct(p))
}

// DELETE /products/:name
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.svc.Delete(c.Param("name")); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
