package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core/question"
)

func questionsPath(assessmentID string) string {
	return assessmentsPath + "/" + url.PathEscape(assessmentID) + "/questions"
}

func (c *Client) ListQuestions(ctx context.Context, assessmentID string) ([]question.Question, error) {
	path := questionsPath(assessmentID)

	var list []question.Question
	err := c.guard(path, func() error {
		return errors.Wrap(c.do(ctx, http.MethodGet, path, nil, nil, &list), "listing questions")
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetQuestion(ctx context.Context, assessmentID, id string) (question.Question, error) {
	var q question.Question
	if err := c.do(ctx, http.MethodGet, questionsPath(assessmentID)+"/"+url.PathEscape(id), nil, nil, &q); err != nil {
		if IsNotFound(err) {
			return question.Question{}, question.ErrNotFound
		}
		return question.Question{}, errors.Wrap(err, "fetching question")
	}
	return q, nil
}

// CreateQuestion validates and submits a draft. On a validation failure no
// request is issued; on success the caller re-fetches the question list.
func (c *Client) CreateQuestion(ctx context.Context, d *question.Draft) (question.Question, error) {
	if err := d.Validate(); err != nil {
		return question.Question{}, err
	}
	var q question.Question
	err := c.do(ctx, http.MethodPost, questionsPath(d.AssessmentID), nil, d.Payload(), &q)
	return q, errors.Wrap(err, "creating question")
}

func (c *Client) UpdateQuestion(ctx context.Context, d *question.Draft) (question.Question, error) {
	if err := d.Validate(); err != nil {
		return question.Question{}, err
	}
	var q question.Question
	err := c.do(ctx, http.MethodPut, questionsPath(d.AssessmentID)+"/"+url.PathEscape(d.ID), nil, d.Payload(), &q)
	return q, errors.Wrap(err, "updating question")
}

func (c *Client) DeleteQuestion(ctx context.Context, assessmentID, id string) error {
	err := c.do(ctx, http.MethodDelete, questionsPath(assessmentID)+"/"+url.PathEscape(id), nil, nil, nil)
	if IsNotFound(err) {
		return question.ErrNotFound
	}
	return errors.Wrap(err, "deleting question")
}
