package payment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// MockGateway simulates the hosted payment provider: it issues redirect
// links and accepts any non-empty reference. Swap for a real client without
// touching the service.
type MockGateway struct {
	BaseURL string
}

func NewMockGateway(baseURL string) *MockGateway {
	return &MockGateway{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (g *MockGateway) VerifyPayment(_ context.Context, reference string) (bool, error) {
	return strings.TrimSpace(reference) != "", nil
}

func (g *MockGateway) GatewayLink(bookingCode string, amount float64, email string) string {
	return fmt.Sprintf("%s/api/v1/payments/simulator?code=%s&amount=%.2f&email=%s",
		g.BaseURL, url.QueryEscape(bookingCode), amount, url.QueryEscape(email))
}

func (g *MockGateway) TransferInstructions() string {
	return "Please transfer the total amount to:\n" +
		"Bank: Moore International Bank\n" +
		"Account Name: Moore Hotel and Suites Ltd\n" +
		"Account Number: 0078649036\n" +
		"Ref: [Your Booking Code]"
}
