// Package gateway - клиент платежного шлюза. Шлюз для нас черный ящик: он
// создает чекаут-сессию на заданную сумму, а по ее идентификатору отдает
// финализированную запись платежа.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

const (
	RouteCheckoutSession       = "/v1/checkout/sessions/%s?expand[]=payment_intent"
	RouteCreateCheckoutSession = "/v1/checkout/sessions"
)

// minorUnitsPerUnit - шлюз считает в минимальных единицах валюты (пайсы, центы).
const minorUnitsPerUnit = 100

type PaymentStatusType string

const (
	PaymentStatusPaid   PaymentStatusType = "paid"
	PaymentStatusUnpaid PaymentStatusType = "unpaid"
)

// Payment - финализированная запись платежа, приведенная к нашим единицам:
// Amount уже поделен на minorUnitsPerUnit.
type Payment struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Email         string
	Status        PaymentStatusType
}

type sessionResponse struct {
	ID            string `json:"id"`
	PaymentIntent struct {
		ID string `json:"id"`
	} `json:"payment_intent"`
	AmountTotal     int64  `json:"amount_total"`
	Currency        string `json:"currency"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
	PaymentStatus PaymentStatusType `json:"payment_status"`
}

// CheckoutSession - созданная шлюзом сессия оплаты. URL ведет на hosted-форму
// шлюза, покупатель завершает платеж там.
type CheckoutSession struct {
	ID  string
	URL string
}

type createSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к шлюзу.
type HTTPClient struct {
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

type Args struct {
	BaseURL   string
	SecretKey string
	// SuccessURL и CancelURL - адреса фронта, куда шлюз вернет покупателя
	// после hosted-чекаута.
	SuccessURL string
	CancelURL  string
}

func New(args Args) HTTPClient {
	return HTTPClient{
		baseURL:    args.BaseURL,
		secretKey:  args.SecretKey,
		successURL: args.SuccessURL,
		cancelURL:  args.CancelURL,
		httpClient: http.DefaultClient,
	}
}

// RetrieveSession получает финализированный платеж по идентификатору сессии.
// При ответе сервера со статусом отличным от http.StatusOK возвращает ошибку
// StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) RetrieveSession(
	ctx context.Context,
	sessionID string,
) (payment *Payment, err error) {
	// Формируем URL запроса.
	reqURL := c.baseURL + fmt.Sprintf(RouteCheckoutSession, sessionID)

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	var session sessionResponse
	if jsonErr := json.Unmarshal(body, &session); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	return &Payment{
		TransactionID: session.PaymentIntent.ID,
		Amount:        decimal.NewFromInt(session.AmountTotal).Div(decimal.NewFromInt(minorUnitsPerUnit)),
		Currency:      session.Currency,
		Email:         session.CustomerDetails.Email,
		Status:        session.PaymentStatus,
	}, nil
}

// CreateSession создает чекаут-сессию на заданную сумму. Сумма уходит шлюзу в
// пайсах одной строкой заказа. При ответе сервера со статусом отличным от
// http.StatusOK возвращает ошибку StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) CreateSession(
	ctx context.Context,
	amount decimal.Decimal,
) (session *CheckoutSession, err error) {
	// Шлюз принимает параметры формой, вложенность кодируется скобками.
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("billing_address_collection", "required")
	form.Set("customer_creation", "always")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", "inr")
	form.Set("line_items[0][price_data][product_data][name]", "Order Payment")
	form.Set("line_items[0][price_data][unit_amount]",
		amount.Mul(decimal.NewFromInt(minorUnitsPerUnit)).Round(0).String())
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)

	req, reqErr := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+RouteCreateCheckoutSession, strings.NewReader(form.Encode()))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	var created createSessionResponse
	if jsonErr := json.Unmarshal(body, &created); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}

	return &CheckoutSession{
		ID:  created.ID,
		URL: created.URL,
	}, nil
}
