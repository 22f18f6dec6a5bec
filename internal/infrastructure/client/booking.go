package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

type bookingClient struct {
	*Client
}

// NewBookingClient creates the booking platform's booking API client.
func NewBookingClient(base *Client) domain.BookingService {
	return &bookingClient{Client: base}
}

type createBookingResponse struct {
	BookingID string `json:"bookingId"`
}

type bookingEnvelope struct {
	Data domain.Booking `json:"data"`
}

// CreateBooking commits a draft and returns the new booking id.
func (c *bookingClient) CreateBooking(ctx context.Context, credential string, req *domain.CreateBookingRequest) (string, error) {
	var resp createBookingResponse
	if err := c.doJSON(ctx, http.MethodPost, "/bookings", credential, req, &resp); err != nil {
		return "", err
	}

	if resp.BookingID == "" {
		return "", fmt.Errorf("booking platform returned no booking id")
	}

	return resp.BookingID, nil
}

// FetchBooking returns the booking with its current status.
func (c *bookingClient) FetchBooking(ctx context.Context, credential, id string) (*domain.Booking, error) {
	var resp bookingEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), credential, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

// UpdateBookingContact updates the booking's contact fields.
func (c *bookingClient) UpdateBookingContact(ctx context.Context, credential, id string, contact domain.ContactFields) error {
	return c.doJSON(ctx, http.MethodPatch, "/bookings/"+url.PathEscape(id)+"/contact", credential, contact, nil)
}

// CancelBooking cancels the booking.
func (c *bookingClient) CancelBooking(ctx context.Context, credential, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/cancel", credential, nil, nil)
}
