package controllers

import (
	"errors"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/pkg/resp"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu
// ?sort=name returns the list alphabetically for the item picker; the
// stored order is otherwise preserved.
func (ctl *MenuController) List(c *gin.Context) {
	items := ctl.Svc.List()
	if c.Query("sort") == "name" {
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	item, err := ctl.Svc.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (ctl *MenuController) Upsert(c *gin.Context) {
	var in services.UpsertMenuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Svc.Upsert(&in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			resp.BadRequest(c, ve.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (ctl *MenuController) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.Svc.Remove(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
