package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/Groundwork-Books/storefront-api/internal/http/dto"
)

const maxWebhookBody = 1 << 20

// WebhookProcessor is implemented by webhook.Reconciler.
type WebhookProcessor interface {
	Handle(ctx context.Context, body []byte)
}

type WebhookHandler struct {
	proc WebhookProcessor
}

func NewWebhookHandler(proc WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{proc: proc}
}

// Receive acknowledges every delivery with 200 {received:true}, no matter
// what processing did. A non-2xx here would only trigger a vendor
// redelivery storm for failures retrying cannot fix.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err == nil {
		h.proc.Handle(r.Context(), body)
	}

	WriteJSON(w, http.StatusOK, dto.WebhookAck{Received: true})
}
