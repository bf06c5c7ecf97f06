package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/pkg/resp"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	resp.OK(c, ctl.Svc.View())
}

// POST /cart/items/:id
func (ctl *CartController) Add(c *gin.Context) {
	view, err := ctl.Svc.Add(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// PATCH /cart/items/:id
func (ctl *CartController) Adjust(c *gin.Context) {
	// Pointer so a literal {"delta":0} binds instead of tripping gin's
	// required-rejects-zero rule; zero is just a harmless no-op adjust.
	var body struct {
		Delta *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := ctl.Svc.Adjust(c.Param("id"), *body.Delta)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	view, err := ctl.Svc.Clear()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}
