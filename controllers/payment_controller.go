package controllers

import (
	"log"

	"tourbooking/pkg/resp"
	"tourbooking/services"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// POST /bookings/:id/payment → { paymentUrl } ให้ frontend redirect ต่อ
func (ctl *PaymentController) Checkout(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	out, err := ctl.Service.CreateCheckout(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	log.Printf("💳 checkout booking=%d txn=%s", id, out.Payment.TxnRef)
	resp.Created(c, out)
}

// GET /payments/return (gateway callback)
func (ctl *PaymentController) Return(c *gin.Context) {
	p, err := ctl.Service.HandleReturn(c.Request.URL.Query())
	if err != nil {
		resp.Error(c, err)
		return
	}
	log.Printf("💳 payment %s -> %s", p.TxnRef, p.Status)
	resp.OK(c, p)
}
