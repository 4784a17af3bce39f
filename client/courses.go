package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core/course"
)

const coursesPath = "/courses"

func lecturesPath(courseID string) string {
	return coursesPath + "/" + url.PathEscape(courseID) + "/lectures"
}

func (c *Client) ListCourses(ctx context.Context, instructorID string) ([]course.Course, error) {
	query := make(url.Values)
	if instructorID != "" {
		query.Set("instructor_id", instructorID)
	}

	var list []course.Course
	err := c.guard(coursesPath, func() error {
		return errors.Wrap(c.do(ctx, http.MethodGet, coursesPath, query, nil, &list), "listing courses")
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetCourse(ctx context.Context, id string) (course.Course, error) {
	var crs course.Course
	if err := c.do(ctx, http.MethodGet, coursesPath+"/"+url.PathEscape(id), nil, nil, &crs); err != nil {
		if IsNotFound(err) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "fetching course")
	}
	return crs, nil
}

func (c *Client) CreateCourse(ctx context.Context, p course.Payload) (course.Course, error) {
	if err := p.Validate(); err != nil {
		return course.Course{}, err
	}
	var crs course.Course
	err := c.do(ctx, http.MethodPost, coursesPath, nil, p, &crs)
	return crs, errors.Wrap(err, "creating course")
}

func (c *Client) UpdateCourse(ctx context.Context, id string, p course.Payload) (course.Course, error) {
	if err := p.Validate(); err != nil {
		return course.Course{}, err
	}
	var crs course.Course
	err := c.do(ctx, http.MethodPut, coursesPath+"/"+url.PathEscape(id), nil, p, &crs)
	return crs, errors.Wrap(err, "updating course")
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, coursesPath+"/"+url.PathEscape(id), nil, nil, nil)
	if IsNotFound(err) {
		return course.ErrNotFound
	}
	return errors.Wrap(err, "deleting course")
}

func (c *Client) ListLectures(ctx context.Context, courseID string) ([]course.Lecture, error) {
	path := lecturesPath(courseID)

	var list []course.Lecture
	err := c.guard(path, func() error {
		return errors.Wrap(c.do(ctx, http.MethodGet, path, nil, nil, &list), "listing lectures")
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateLecture(ctx context.Context, courseID string, p course.LecturePayload) (course.Lecture, error) {
	if err := p.Validate(); err != nil {
		return course.Lecture{}, err
	}
	var lec course.Lecture
	err := c.do(ctx, http.MethodPost, lecturesPath(courseID), nil, p, &lec)
	return lec, errors.Wrap(err, "creating lecture")
}

func (c *Client) UpdateLecture(ctx context.Context, courseID, id string, p course.LecturePayload) (course.Lecture, error) {
	if err := p.Validate(); err != nil {
		return course.Lecture{}, err
	}
	var lec course.Lecture
	err := c.do(ctx, http.MethodPut, lecturesPath(courseID)+"/"+url.PathEscape(id), nil, p, &lec)
	return lec, errors.Wrap(err, "updating lecture")
}

func (c *Client) DeleteLecture(ctx context.Context, courseID, id string) error {
	err := c.do(ctx, http.MethodDelete, lecturesPath(courseID)+"/"+url.PathEscape(id), nil, nil, nil)
	if IsNotFound(err) {
		return course.ErrLectureNotFound
	}
	return errors.Wrap(err, "deleting lecture")
}

// ReorderLectures submits the full ordered id list; the backend owns
// position assignment.
func (c *Client) ReorderLectures(ctx context.Context, courseID string, ids []string) error {
	body := map[string][]string{"lecture_ids": ids}
	err := c.do(ctx, http.MethodPost, lecturesPath(courseID)+"/reorder", nil, body, nil)
	return errors.Wrap(err, "reordering lectures")
}
