package orderController

import (
	"context"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"

	"github.com/tharshan2001/Ebee.lk/configs"
	"github.com/tharshan2001/Ebee.lk/models"
	"github.com/tharshan2001/Ebee.lk/responses"
)

// CreatePaymentIntent opens a Stripe PaymentIntent for an order whose
// payment method is Stripe, charging the total in the currency's
// smallest unit.
func CreatePaymentIntent(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if configs.EnvStripeSecretKey() == "" {
		return responses.Error(c, fiber.StatusInternalServerError, "Stripe is not configured")
	}
	stripe.Key = configs.EnvStripeSecretKey()

	order, err := ownedOrder(ctx, c)
	if order == nil {
		return err
	}

	if order.PaymentMethod != models.PaymentStripe {
		return responses.Error(c, fiber.StatusBadRequest, "Order is not payable with Stripe")
	}
	if order.IsPaid {
		return responses.Error(c, fiber.StatusBadRequest, "Order is already paid")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(order.TotalPrice * 100))),
		Currency: stripe.String(configs.EnvCurrency()),
	}
	params.AddMetadata("orderNumber", order.OrderNumber)

	pi, err := paymentintent.New(params)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to create payment intent")
	}

	return responses.OK(c, "Payment intent created", &fiber.Map{
		"paymentIntentId": pi.ID,
		"clientSecret":    pi.ClientSecret,
	})
}
