package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/pkg/resp"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/services"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/utils"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout
// Success means the sale is persisted and the cart cleared; the UI shows
// its payment QR off the returned record.
func (ctl *CheckoutController) Checkout(c *gin.Context) {
	rec, err := ctl.Svc.Checkout()
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"sale":         rec,
		"totalDisplay": utils.FormatMoney(rec.Total),
	})
}
