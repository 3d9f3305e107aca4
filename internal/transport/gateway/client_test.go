package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) newClient() HTTPClient {
	return New(Args{
		BaseURL:    s.server.URL,
		SecretKey:  "sk_test_key",
		SuccessURL: "http://localhost:3000/thank-you?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "http://localhost:3000/checkout",
	})
}

// TestRetrieveSession Успешный ответ шлюза: сумма из пайсов приводится к
// рупиям, идентификатором платежа становится payment_intent.
func (s *ClientTestSuite) TestRetrieveSession() {
	sessionID := "cs_test_100"
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/v1/checkout/sessions/"+sessionID, r.URL.Path)
		s.Equal("payment_intent", r.URL.Query().Get("expand[]"))
		s.Equal("Bearer sk_test_key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, writeErr := w.Write([]byte(`{
			"id": "cs_test_100",
			"payment_intent": {"id": "pi_100"},
			"amount_total": 49999,
			"currency": "inr",
			"customer_details": {"email": "buyer@example.com"},
			"payment_status": "paid"
		}`))
		s.Require().NoError(writeErr)
	}))

	client := s.newClient()
	payment, err := client.RetrieveSession(context.Background(), sessionID)
	s.Require().NoError(err)

	s.Equal("pi_100", payment.TransactionID)
	s.True(payment.Amount.Equal(decimal.NewFromFloat(499.99)), "want 499.99, got %s", payment.Amount)
	s.Equal("inr", payment.Currency)
	s.Equal("buyer@example.com", payment.Email)
	s.Equal(PaymentStatusPaid, payment.Status)
}

func (s *ClientTestSuite) TestRetrieveSession_BadStatus() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	client := s.newClient()
	_, err := client.RetrieveSession(context.Background(), "cs_missing")

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusNotFound, statusErr.Code)
}

func (s *ClientTestSuite) TestRetrieveSession_InvalidJSON() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, writeErr := w.Write([]byte("not a json"))
		s.Require().NoError(writeErr)
	}))

	client := s.newClient()
	_, err := client.RetrieveSession(context.Background(), "cs_test_100")
	s.Error(err)
}

// TestCreateSession Сумма уходит шлюзу формой в пайсах, вместе с адресами
// возврата покупателя.
func (s *ClientTestSuite) TestCreateSession() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1/checkout/sessions", r.URL.Path)
		s.Equal("Bearer sk_test_key", r.Header.Get("Authorization"))
		s.Equal("application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		s.Require().NoError(r.ParseForm())
		s.Equal("payment", r.PostForm.Get("mode"))
		s.Equal("49999", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		s.Equal("inr", r.PostForm.Get("line_items[0][price_data][currency]"))
		s.Equal("http://localhost:3000/thank-you?session_id={CHECKOUT_SESSION_ID}", r.PostForm.Get("success_url"))
		s.Equal("http://localhost:3000/checkout", r.PostForm.Get("cancel_url"))

		w.Header().Set("Content-Type", "application/json")
		_, writeErr := w.Write([]byte(`{
			"id": "cs_test_200",
			"url": "https://checkout.gateway.example/pay/cs_test_200"
		}`))
		s.Require().NoError(writeErr)
	}))

	client := s.newClient()
	session, err := client.CreateSession(context.Background(), decimal.NewFromFloat(499.99))
	s.Require().NoError(err)

	s.Equal("cs_test_200", session.ID)
	s.Equal("https://checkout.gateway.example/pay/cs_test_200", session.URL)
}

func (s *ClientTestSuite) TestCreateSession_BadStatus() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	client := s.newClient()
	_, err := client.CreateSession(context.Background(), decimal.NewFromInt(500))

	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusUnauthorized, statusErr.Code)
}
