package controllers

import (
	"burgerhouse/pkg/resp"
	"burgerhouse/repository"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.svc.Create(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, toOrder(o))
}

// POST /orders/quote prices a cart without storing anything.
func (oc *OrderController) Quote(c *gin.Context) {
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	q, err := oc.svc.Price(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, q.Cart.Totals())
}

// GET /orders/me
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.svc.ListForUser(utils.CurrentUserID(c), utils.QueryInt(c, "limit", 0))
	if err != nil {
		fail(c, err)
		return
	}
	views := mapSlice(orders, toOrder)
	resp.Page(c, views, resp.Meta{Total: int64(len(views))})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := utils.ParamUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	o, err := oc.svc.Detail(utils.CurrentUserID(c), id, utils.IsAdmin(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toOrder(o))
}

// GET /orders?status&page&limit (admin)
func (oc *OrderController) List(c *gin.Context) {
	page := utils.QueryInt(c, "page", 1)
	limit := utils.QueryInt(c, "limit", 0)
	rows, total, err := oc.svc.List(c.Query("status"), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	if rows == nil {
		rows = []repository.OrderSummary{}
	}
	resp.Page(c, rows, resp.Meta{Total: total, Page: page, Limit: limit})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParamUint(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.svc.UpdateStatus(id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toOrder(o))
}
