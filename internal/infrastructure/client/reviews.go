package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

type reviewClient struct {
	*Client
}

// NewReviewClient creates the review API client.
func NewReviewClient(base *Client) domain.ReviewService {
	return &reviewClient{Client: base}
}

type reviewEnvelope struct {
	Data domain.Review `json:"data"`
}

// FetchReview returns the booking's review, or nil when none exists. The
// platform answers 404 for a booking without a review; that is not an error
// here.
func (c *reviewClient) FetchReview(ctx context.Context, credential, bookingID string) (*domain.Review, error) {
	var resp reviewEnvelope
	err := c.doJSON(ctx, http.MethodGet, "/bookings/"+url.PathEscape(bookingID)+"/review", credential, nil, &resp)
	if err != nil {
		var remote *domain.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &resp.Data, nil
}

// CreateReview creates the booking's review.
func (c *reviewClient) CreateReview(ctx context.Context, credential, bookingID string, input domain.ReviewInput) (*domain.Review, error) {
	var resp reviewEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/bookings/"+url.PathEscape(bookingID)+"/review", credential, input, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

// UpdateReview updates an existing review.
func (c *reviewClient) UpdateReview(ctx context.Context, credential, reviewID string, input domain.ReviewInput) (*domain.Review, error) {
	var resp reviewEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/reviews/"+url.PathEscape(reviewID), credential, input, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

// DeleteReview deletes an existing review.
func (c *reviewClient) DeleteReview(ctx context.Context, credential, reviewID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(reviewID), credential, nil, nil)
}
