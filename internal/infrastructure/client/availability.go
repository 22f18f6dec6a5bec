package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

type availabilityClient struct {
	*Client
}

// NewAvailabilityClient creates the availability search client.
func NewAvailabilityClient(base *Client) domain.AvailabilitySearch {
	return &availabilityClient{Client: base}
}

// SearchAvailability returns hotels available for the given stay.
func (c *availabilityClient) SearchAvailability(ctx context.Context, credential, city string, checkIn, checkOut time.Time, occupancy int) (*domain.AvailabilityResult, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("checkIn", checkIn.Format("2006-01-02"))
	params.Set("checkOut", checkOut.Format("2006-01-02"))
	params.Set("occupancy", fmt.Sprintf("%d", occupancy))

	var resp domain.AvailabilityResult
	if err := c.doJSON(ctx, http.MethodGet, "/availability?"+params.Encode(), credential, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
