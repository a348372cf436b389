package controllers

import (
	"burgerhouse/pkg/resp"
	"burgerhouse/services"
	"burgerhouse/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	svc *services.CheckoutService
}

func NewCheckoutController(svc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{svc: svc}
}

// POST /checkout
func (cc *CheckoutController) Start(c *gin.Context) {
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := cc.svc.Start(utils.CurrentUserID(c), &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /checkout/:session/success
func (cc *CheckoutController) Success(c *gin.Context) {
	o, err := cc.svc.Confirm(utils.CurrentUserID(c), c.Param("session"), utils.IsAdmin(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toOrder(o))
}

// POST /checkout/:session/cancel
func (cc *CheckoutController) Cancel(c *gin.Context) {
	o, err := cc.svc.Cancel(utils.CurrentUserID(c), c.Param("session"), utils.IsAdmin(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, toOrder(o))
}
