package bungie

import (
	"context"
	"fmt"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// ResolveMembership finds the Destiny membership the token belongs to
func (c *Client) ResolveMembership(ctx context.Context, tok domain.Token) (*domain.Membership, error) {
	raw, err := c.GetMemberships(ctx, tok)
	if err != nil {
		return nil, err
	}

	doc, err := raw.Decode()
	if err != nil {
		return nil, err
	}

	m, ok := PrimaryMembership(doc)
	if !ok {
		return nil, fmt.Errorf("%w: status %d", domain.ErrMembershipNotFound, raw.StatusCode)
	}
	return &m, nil
}
