package webhook

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

const (
	eventPaymentUpdated = "payment.updated"
	statusCompleted     = "COMPLETED"
)

// Fulfiller performs the downstream side effect for a completed payment.
// Implementations set state per order id, so repeat deliveries are safe.
type Fulfiller interface {
	CompleteOrder(ctx context.Context, orderID string) error
}

// Event is the processor's webhook envelope. Fields we don't care about are
// simply not modeled.
type Event struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Payment struct {
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"payment"`
		} `json:"object"`
	} `json:"data"`
}

// Reconciler applies asynchronous payment-status notifications. Processing
// failures are logged and swallowed: the sender has no retry remedy for a
// downstream bug, and the HTTP layer always acknowledges receipt.
type Reconciler struct {
	fulfiller Fulfiller
	log       *logrus.Logger
}

func NewReconciler(f Fulfiller, log *logrus.Logger) *Reconciler {
	return &Reconciler{fulfiller: f, log: log}
}

// Handle processes one delivery. It never returns an error.
func (r *Reconciler) Handle(ctx context.Context, body []byte) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		r.log.WithError(err).Warn("webhook: discarding malformed event body")
		return
	}

	if ev.Type != eventPaymentUpdated {
		r.log.WithField("type", ev.Type).Debug("webhook: ignoring event type")
		return
	}

	p := ev.Data.Object.Payment
	if p.Status != statusCompleted || p.OrderID == "" {
		return
	}

	if err := r.fulfiller.CompleteOrder(ctx, p.OrderID); err != nil {
		r.log.WithError(err).WithField("orderId", p.OrderID).Error("webhook: order fulfillment failed")
		return
	}
	r.log.WithField("orderId", p.OrderID).Info("webhook: order marked fulfilled")
}
