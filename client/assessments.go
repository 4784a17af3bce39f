package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core/assessment"
)

const assessmentsPath = "/assessments"

func (c *Client) ListAssessments(ctx context.Context, subjectID string) ([]assessment.Assessment, error) {
	query := make(url.Values)
	if subjectID != "" {
		query.Set("subject_id", subjectID)
	}

	var list []assessment.Assessment
	err := c.guard(assessmentsPath, func() error {
		return errors.Wrap(c.do(ctx, http.MethodGet, assessmentsPath, query, nil, &list), "listing assessments")
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetAssessment(ctx context.Context, id string) (assessment.Assessment, error) {
	var a assessment.Assessment
	if err := c.do(ctx, http.MethodGet, assessmentsPath+"/"+url.PathEscape(id), nil, nil, &a); err != nil {
		if IsNotFound(err) {
			return assessment.Assessment{}, assessment.ErrNotFound
		}
		return assessment.Assessment{}, errors.Wrap(err, "fetching assessment")
	}
	return a, nil
}

func (c *Client) CreateAssessment(ctx context.Context, d *assessment.Draft) (assessment.Assessment, error) {
	if err := d.Validate(); err != nil {
		return assessment.Assessment{}, err
	}
	var a assessment.Assessment
	err := c.do(ctx, http.MethodPost, assessmentsPath, nil, d.Payload(), &a)
	return a, errors.Wrap(err, "creating assessment")
}

func (c *Client) UpdateAssessment(ctx context.Context, d *assessment.Draft) (assessment.Assessment, error) {
	if err := d.Validate(); err != nil {
		return assessment.Assessment{}, err
	}
	var a assessment.Assessment
	err := c.do(ctx, http.MethodPut, assessmentsPath+"/"+url.PathEscape(d.ID), nil, d.Payload(), &a)
	return a, errors.Wrap(err, "updating assessment")
}

func (c *Client) DeleteAssessment(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, assessmentsPath+"/"+url.PathEscape(id), nil, nil, nil)
	if IsNotFound(err) {
		return assessment.ErrNotFound
	}
	return errors.Wrap(err, "deleting assessment")
}

func (c *Client) PublishAssessment(ctx context.Context, id string, publish bool) error {
	body := map[string]bool{"is_published": publish}
	err := c.do(ctx, http.MethodPost, assessmentsPath+"/"+url.PathEscape(id)+"/publish", nil, body, nil)
	return errors.Wrap(err, "publishing assessment")
}
