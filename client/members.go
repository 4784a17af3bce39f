package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core/member"
)

const membersPath = "/admin/users"

// ListMembers fetches the member collection with server-driven filtering and
// sorting. The result is dropped as ErrStale when a newer list request was
// issued while this one was in flight.
func (c *Client) ListMembers(ctx context.Context, filter member.QueryFilter, ords []member.Ordering) ([]member.Member, error) {
	filter.Clean()
	query := filter.Values()
	if spec := member.EncodeOrdering(ords); spec != "" {
		query.Set("ordering", spec)
	}

	var members []member.Member
	err := c.guard(membersPath, func() error {
		var raws []map[string]interface{}
		if err := c.do(ctx, http.MethodGet, membersPath, query, nil, &raws); err != nil {
			return errors.Wrap(err, "listing members")
		}
		members = make([]member.Member, 0, len(raws))
		for _, raw := range raws {
			m, err := member.ParseMember(raw)
			if err != nil {
				return errors.Wrap(err, "parsing member")
			}
			members = append(members, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) GetMember(ctx context.Context, id string) (member.Member, error) {
	var raw map[string]interface{}
	if err := c.do(ctx, http.MethodGet, membersPath+"/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		if IsNotFound(err) {
			return member.Member{}, member.ErrNotFound
		}
		return member.Member{}, errors.Wrap(err, "fetching member")
	}
	m, err := member.ParseMember(raw)
	return m, errors.Wrap(err, "parsing member")
}

// CreateMember registers a new member. Validate the payload first; a
// validation failure never reaches the network.
func (c *Client) CreateMember(ctx context.Context, nm member.NewMember) (member.Member, error) {
	if err := nm.Validate(); err != nil {
		return member.Member{}, err
	}
	var raw map[string]interface{}
	if err := c.do(ctx, http.MethodPost, membersPath, nil, nm, &raw); err != nil {
		return member.Member{}, errors.Wrap(err, "creating member")
	}
	m, err := member.ParseMember(raw)
	return m, errors.Wrap(err, "parsing member")
}

// SetMemberRole calls the dedicated role mutation endpoint. The displayed
// state is refreshed by a full list re-fetch, never patched locally.
func (c *Client) SetMemberRole(ctx context.Context, id, role string) error {
	if !member.ValidRole(role) {
		return errors.Errorf("unknown role %q", role)
	}
	body := map[string]string{"role": role}
	err := c.do(ctx, http.MethodPost, membersPath+"/"+url.PathEscape(id)+"/set-role", nil, body, nil)
	return errors.Wrap(err, "setting member role")
}

// SetMemberActive toggles the activation flag through its dedicated endpoint.
func (c *Client) SetMemberActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"is_active": active}
	err := c.do(ctx, http.MethodPost, membersPath+"/"+url.PathEscape(id)+"/set-active", nil, body, nil)
	return errors.Wrap(err, "setting member active state")
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, membersPath+"/"+url.PathEscape(id), nil, nil, nil)
	if IsNotFound(err) {
		return member.ErrNotFound
	}
	return errors.Wrap(err, "deleting member")
}
