package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/anastasya/flower-shop/internal/api/response"
	"github.com/anastasya/flower-shop/internal/validation"
	"github.com/anastasya/flower-shop/internal/whatsapp"
)

// CheckoutHandler turns the client-side saved-items cart into the external
// messaging deep link. No order is recorded server-side.
type CheckoutHandler struct {
	number string
	log    *logrus.Logger
}

func NewCheckoutHandler(whatsappNumber string, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{number: whatsappNumber, log: log}
}

type CheckoutLinkRequest struct {
	Items []whatsapp.OrderItem `json:"items" validate:"required,min=1,dive"`
}

type CheckoutLinkData struct {
	URL string `json:"url"`
}

func (h *CheckoutHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req CheckoutLinkRequest
	if err := validation.DecodeAndValidate(r, &req); err != nil {
		response.HandleError(w, h.log, err)
		return
	}

	response.Success(w, CheckoutLinkData{
		URL: whatsapp.OrderURL(h.number, req.Items),
	}, "Checkout link generated")
}
