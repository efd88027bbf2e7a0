package kitchenapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"kitchenadmin/internal/domain"
)

// Client talks to the remote kitchen API. Every call carries the caller's
// token in the `Authorization: Token ...` scheme the API expects; nothing
// is retried or cached here.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login/", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "login response missing token"}
	}
	return out.Token, nil
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, token string, id int64) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d/", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBookingPayload is the draft the admin submits: no id, no total_fee.
// Item order is preserved exactly as entered.
type CreateBookingPayload struct {
	ClientName         string               `json:"client_name"`
	Address            string               `json:"address"`
	PaymentMethod      domain.PaymentMethod `json:"payment_method"`
	DeliveryDate       string               `json:"delivery_date"`
	CurrentDate        string               `json:"current_date"`
	ExpectedReturnDate string               `json:"expected_return_date"`
	TransportCost      decimal.Decimal      `json:"transport_cost"`
	Discount           decimal.Decimal      `json:"discount"`
	PaymentStatus      domain.PaymentStatus `json:"payment_status"`
	RentedItems        []domain.RentedItem  `json:"rented_items"`
}

func (c *Client) CreateBooking(ctx context.Context, token string, payload CreateBookingPayload) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type paymentStatusPatch struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, token string, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	var out domain.Booking
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/bookings/%d/", id), token, paymentStatusPatch{PaymentStatus: status}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d/", id), token, nil, nil)
}

type revenueResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Revenue fetches total revenue for an optional month/year filter. Zero
// values mean "omit the parameter", matching the reports page.
func (c *Client) Revenue(ctx context.Context, token string, month, year int) (decimal.Decimal, error) {
	q := url.Values{}
	if month > 0 {
		q.Set("month", fmt.Sprintf("%d", month))
	}
	if year > 0 {
		q.Set("year", fmt.Sprintf("%d", year))
	}
	path := "/reports/revenue/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out revenueResponse
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.TotalRevenue, nil
}

type bankFeesResponse struct {
	FeesByBank []domain.BankFee `json:"fees_by_bank"`
}

func (c *Client) BankFees(ctx context.Context, token string) ([]domain.BankFee, error) {
	var out bankFeesResponse
	if err := c.do(ctx, http.MethodGet, "/reports/bank-fees/", token, nil, &out); err != nil {
		return nil, err
	}
	return out.FeesByBank, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError extracts the server's `error` field so the message reaches the
// user verbatim; anything undecodable degrades to a plain HTTP status line.
func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
		}
		if payload.Detail != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: payload.Detail}
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
}
