package controllers

import (
	"github.com/gin-gonic/gin"

	"tourism-backend/pkg/resp"
	"tourism-backend/services"
	"tourism-backend/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, gin.H{
		"orderSn":     out.OrderSN,
		"totalAmount": out.TotalAmount,
		"payUrl":      "/orders/" + out.OrderSN + "/pay",
	})
}

// GET /orders/:sn/pay?success=1 — the payment callback. Idempotent: a
// repeat delivery answers ok without touching the order again.
func (oc *OrderController) Pay(c *gin.Context) {
	if c.Query("success") != "1" {
		resp.BadRequest(c, "payment not confirmed")
		return
	}
	if err := oc.Svc.Pay(utils.CurrentUserID(c), c.Param("sn")); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderSn": c.Param("sn"), "status": "paid"})
}

// POST /orders/:sn/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	if err := oc.Svc.Cancel(utils.CurrentUserID(c), c.Param("sn")); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderSn": c.Param("sn"), "status": "cancelled"})
}

// GET /orders?status=&page=&limit=
func (oc *OrderController) List(c *gin.Context) {
	page, limit := parsePaging(c)
	items, total, err := oc.Svc.ListForUser(utils.CurrentUserID(c), c.Query("status"), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page})
}

// GET /orders/:sn
func (oc *OrderController) Detail(c *gin.Context) {
	out, err := oc.Svc.DetailForUser(utils.CurrentUserID(c), c.Param("sn"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, out)
}
