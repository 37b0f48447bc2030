package payments

import (
	"context"
	"errors"
	"strings"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
	"github.com/google/uuid"
)

// ErrMissingSource rejects a submission with no payment source token before
// any network call.
var ErrMissingSource = errors.New("payment source required")

const defaultCurrency = "USD"

// Charger is the slice of the commerce client the submitter needs.
type Charger interface {
	CreatePayment(ctx context.Context, req commerce.PaymentRequest) (*commerce.Payment, error)
}

type SubmitRequest struct {
	OrderID        string
	SourceID       string
	Amount         int64
	Currency       string
	IdempotencyKey string
	BuyerEmail     string
}

// Result is a tagged payment outcome. Never mutated after construction.
// Detail preserves the processor's error payload verbatim.
type Result struct {
	Paid     bool
	Declined bool

	PaymentID string
	Status    string
	OrderID   string
	Payment   *commerce.Payment

	Reason string
	Detail any
}

type Submitter struct {
	charger    Charger
	locationID string
}

func NewSubmitter(c Charger, locationID string) *Submitter {
	return &Submitter{charger: c, locationID: locationID}
}

// Submit sends one charge to the processor. The idempotency key is the
// caller's when supplied, otherwise a fresh UUID per submission instant, so
// a processor-side retry of the same request never double-charges.
func (s *Submitter) Submit(ctx context.Context, req SubmitRequest) (Result, error) {
	if strings.TrimSpace(req.SourceID) == "" {
		return Result{}, ErrMissingSource
	}

	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	p, err := s.charger.CreatePayment(ctx, commerce.PaymentRequest{
		SourceID:       req.SourceID,
		IdempotencyKey: key,
		AmountMoney:    commerce.Money{Amount: req.Amount, Currency: currency},
		LocationID:     s.locationID,
		OrderID:        req.OrderID,
		BuyerEmail:     req.BuyerEmail,
	})
	if err != nil {
		var apiErr *commerce.APIError
		if errors.As(err, &apiErr) {
			reason := apiErr.Detail
			if reason == "" {
				reason = "payment declined"
			}
			detail := any(apiErr.Raw)
			if apiErr.Raw == nil {
				detail = apiErr.Error()
			}
			return Result{Declined: true, OrderID: req.OrderID, Reason: reason, Detail: detail}, nil
		}
		return Result{OrderID: req.OrderID, Reason: "payment request failed", Detail: err.Error()}, nil
	}

	return Result{
		Paid:      true,
		PaymentID: p.ID,
		Status:    p.Status,
		OrderID:   req.OrderID,
		Payment:   p,
	}, nil
}
