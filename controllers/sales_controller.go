package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/pkg/resp"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/services"
)

type SalesController struct{ Svc *services.SalesService }

func NewSalesController(s *services.SalesService) *SalesController { return &SalesController{Svc: s} }

// GET /sales
func (ctl *SalesController) List(c *gin.Context) {
	resp.OK(c, gin.H{"sales": ctl.Svc.List()})
}

// GET /sales/summary
func (ctl *SalesController) Summary(c *gin.Context) {
	resp.OK(c, gin.H{"summary": ctl.Svc.MonthlySummary()})
}
