package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core/notification"
)

const notificationsPath = "/notifications"

func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]notification.Notification, error) {
	query := make(url.Values)
	if unreadOnly {
		query.Set("unread", strconv.FormatBool(true))
	}

	var list []notification.Notification
	err := c.guard(notificationsPath, func() error {
		return errors.Wrap(c.do(ctx, http.MethodGet, notificationsPath, query, nil, &list), "listing notifications")
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodPost, notificationsPath+"/"+url.PathEscape(id)+"/read", nil, nil, nil)
	if IsNotFound(err) {
		return notification.ErrNotFound
	}
	return errors.Wrap(err, "marking notification read")
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, notificationsPath+"/read-all", nil, nil, nil)
	return errors.Wrap(err, "marking notifications read")
}

// Announce publishes a platform announcement. Email delivery of a copy is
// the console's concern (services/email), not the backend's.
func (c *Client) Announce(ctx context.Context, a *notification.Announcement) (notification.Notification, error) {
	if err := a.Validate(); err != nil {
		return notification.Notification{}, err
	}
	var n notification.Notification
	err := c.do(ctx, http.MethodPost, notificationsPath+"/announce", nil, a, &n)
	return n, errors.Wrap(err, "publishing announcement")
}
