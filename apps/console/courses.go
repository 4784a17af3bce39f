package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core/course"
)

func (cli *commandLine) courses(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("courses", flag.ExitOnError)
	instructor := cmd.String("instructor", "", "Filter by instructor id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	return cli.renderCourses(ctx, *instructor)
}

func (cli *commandLine) renderCourses(ctx context.Context, instructorID string) error {
	list, err := cli.api.ListCourses(ctx, instructorID)
	if err != nil {
		if errors.Cause(err) == client.ErrStale {
			return nil
		}
		return cli.fail(err)
	}

	w := cli.table()
	fmt.Fprintln(w, "ID\tTITLE\tLECTURES\tPUBLISHED")
	for _, crs := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%t\n", crs.ID, crs.Title, crs.LectureCount, crs.IsPublished)
	}
	return w.Flush()
}

func (cli *commandLine) courseCreate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("course-create", flag.ExitOnError)
	title := cmd.String("title", "", "The course title.")
	description := cmd.String("description", "", "Optional description.")
	subject := cmd.String("subject", "", "The subject id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	p := course.Payload{Title: *title, Description: *description, SubjectID: *subject}
	if _, err := cli.api.CreateCourse(ctx, p); err != nil {
		return cli.fail(err)
	}
	return cli.renderCourses(ctx, "")
}

func (cli *commandLine) courseUpdate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("course-update", flag.ExitOnError)
	id := cmd.String("id", "", "The course id.")
	title := cmd.String("title", "", "The course title.")
	description := cmd.String("description", "", "Optional description.")
	subject := cmd.String("subject", "", "The subject id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	current, err := cli.api.GetCourse(ctx, *id)
	if err != nil {
		return cli.fail(err)
	}
	p := course.Payload{Title: current.Title, Description: current.Description, SubjectID: current.SubjectID}
	if *title != "" {
		p.Title = *title
	}
	if *description != "" {
		p.Description = *description
	}
	if *subject != "" {
		p.SubjectID = *subject
	}

	if _, err := cli.api.UpdateCourse(ctx, *id, p); err != nil {
		return cli.fail(err)
	}
	return cli.renderCourses(ctx, "")
}

func (cli *commandLine) courseDelete(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("course-delete", flag.ExitOnError)
	id := cmd.String("id", "", "The course id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.api.DeleteCourse(ctx, *id); err != nil {
		return cli.fail(err)
	}
	return cli.renderCourses(ctx, "")
}

func (cli *commandLine) lectures(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("lectures", flag.ExitOnError)
	courseID := cmd.String("course", "", "The course id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *courseID == "" {
		cmd.Usage()
		return errHelp
	}
	return cli.renderLectures(ctx, *courseID)
}

func (cli *commandLine) renderLectures(ctx context.Context, courseID string) error {
	list, err := cli.api.ListLectures(ctx, courseID)
	if err != nil {
		if errors.Cause(err) == client.ErrStale {
			return nil
		}
		return cli.fail(err)
	}

	w := cli.table()
	fmt.Fprintln(w, "POS\tID\tTITLE\tPREVIEW")
	for _, lec := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", lec.Position, lec.ID, lec.Title, lec.IsPreview)
	}
	return w.Flush()
}

func lectureFlags(cmd *flag.FlagSet) (title, content, video *string, duration *int, preview *bool) {
	title = cmd.String("title", "", "The lecture title.")
	content = cmd.String("content", "", "Lecture notes / body.")
	video = cmd.String("video", "", "Video URL.")
	duration = cmd.Int("duration", 0, "Duration in minutes (0 = unknown).")
	preview = cmd.Bool("preview", false, "Visible without enrollment.")
	return
}

func (cli *commandLine) lectureAdd(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("lecture-add", flag.ExitOnError)
	courseID := cmd.String("course", "", "The course id.")
	title, content, video, duration, preview := lectureFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *courseID == "" {
		cmd.Usage()
		return errHelp
	}

	p := course.LecturePayload{
		Title:           *title,
		Content:         *content,
		VideoURL:        *video,
		DurationMinutes: intFlagValue(*duration),
		IsPreview:       *preview,
	}
	if _, err := cli.api.CreateLecture(ctx, *courseID, p); err != nil {
		return cli.fail(err)
	}
	return cli.renderLectures(ctx, *courseID)
}

func (cli *commandLine) lectureEdit(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("lecture-edit", flag.ExitOnError)
	courseID := cmd.String("course", "", "The course id.")
	id := cmd.String("id", "", "The lecture id.")
	title, content, video, duration, preview := lectureFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *courseID == "" || *id == "" {
		cmd.Usage()
		return errHelp
	}

	p := course.LecturePayload{
		Title:           *title,
		Content:         *content,
		VideoURL:        *video,
		DurationMinutes: intFlagValue(*duration),
		IsPreview:       *preview,
	}
	if _, err := cli.api.UpdateLecture(ctx, *courseID, *id, p); err != nil {
		return cli.fail(err)
	}
	return cli.renderLectures(ctx, *courseID)
}

func (cli *commandLine) lectureDelete(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("lecture-delete", flag.ExitOnError)
	courseID := cmd.String("course", "", "The course id.")
	id := cmd.String("id", "", "The lecture id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *courseID == "" || *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.api.DeleteLecture(ctx, *courseID, *id); err != nil {
		return cli.fail(err)
	}
	return cli.renderLectures(ctx, *courseID)
}

func (cli *commandLine) lecturesReorder(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("lectures-reorder", flag.ExitOnError)
	courseID := cmd.String("course", "", "The course id.")
	ids := cmd.String("ids", "", "Comma-separated lecture ids in the new order.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *courseID == "" || *ids == "" {
		cmd.Usage()
		return errHelp
	}

	ordered := make([]string, 0)
	for _, id := range strings.Split(*ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ordered = append(ordered, id)
		}
	}
	if err := cli.api.ReorderLectures(ctx, *courseID, ordered); err != nil {
		return cli.fail(err)
	}
	return cli.renderLectures(ctx, *courseID)
}
