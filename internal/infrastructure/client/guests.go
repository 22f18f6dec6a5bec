package client

import (
	"context"
	"net/http"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

type guestDirectoryClient struct {
	*Client
}

// NewGuestDirectoryClient creates the known-guest directory client.
func NewGuestDirectoryClient(base *Client) domain.GuestDirectory {
	return &guestDirectoryClient{Client: base}
}

type knownGuestsEnvelope struct {
	Data []domain.KnownGuest `json:"data"`
}

// SearchKnownGuests returns the account's known guests for roster autofill.
func (c *guestDirectoryClient) SearchKnownGuests(ctx context.Context, credential string) ([]domain.KnownGuest, error) {
	var resp knownGuestsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/guests/known", credential, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}
