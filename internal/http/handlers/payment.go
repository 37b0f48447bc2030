package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Groundwork-Books/storefront-api/internal/http/dto"
	"github.com/Groundwork-Books/storefront-api/internal/payments"
)

// PaymentService is implemented by payments.Submitter.
type PaymentService interface {
	Submit(ctx context.Context, req payments.SubmitRequest) (payments.Result, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req dto.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Amount <= 0 {
		WriteError(w, r, http.StatusBadRequest, "amount must be a positive minor-unit integer", nil)
		return
	}

	submit := payments.SubmitRequest{
		OrderID:        orderID,
		SourceID:       req.SourceID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		IdempotencyKey: req.IdempotencyKey,
	}
	if req.CustomerInfo != nil {
		submit.BuyerEmail = req.CustomerInfo.Email
	}

	result, err := h.svc.Submit(r.Context(), submit)
	if err != nil {
		if errors.Is(err, payments.ErrMissingSource) {
			WriteError(w, r, http.StatusBadRequest, "Payment source required", nil)
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "payment submission failed", err.Error())
		return
	}

	if !result.Paid {
		status := http.StatusBadGateway
		if result.Declined {
			status = http.StatusPaymentRequired
		}
		WriteError(w, r, status, result.Reason, result.Detail)
		return
	}

	WriteJSON(w, http.StatusOK, dto.PaymentResponse{
		Success:   true,
		Payment:   result.Payment,
		PaymentID: result.PaymentID,
		Status:    "PAID",
	})
}
