package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core/assessment"
)

func intFlagValue(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func (cli *commandLine) assessments(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assessments", flag.ExitOnError)
	subject := cmd.String("subject", "", "Filter by subject id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	return cli.renderAssessments(ctx, *subject)
}

func (cli *commandLine) renderAssessments(ctx context.Context, subjectID string) error {
	list, err := cli.api.ListAssessments(ctx, subjectID)
	if err != nil {
		if errors.Cause(err) == client.ErrStale {
			return nil
		}
		return cli.fail(err)
	}

	w := cli.table()
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tQUESTIONS\tPUBLISHED")
	for _, a := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\n", a.ID, a.Title, a.Type, a.QuestionCount, a.IsPublished)
	}
	return w.Flush()
}

func (cli *commandLine) assessmentShow(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assessment-show", flag.ExitOnError)
	id := cmd.String("id", "", "The assessment id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	a, err := cli.api.GetAssessment(ctx, *id)
	if err != nil {
		return cli.fail(err)
	}
	w := cli.table()
	fmt.Fprintf(w, "ID\t%s\n", a.ID)
	fmt.Fprintf(w, "Title\t%s\n", a.Title)
	fmt.Fprintf(w, "Type\t%s\n", a.Type)
	fmt.Fprintf(w, "Subject\t%s\n", a.SubjectID)
	if a.TimeLimitMinutes != nil {
		fmt.Fprintf(w, "Time limit\t%d min\n", *a.TimeLimitMinutes)
	}
	if a.MaxAttempts != nil {
		fmt.Fprintf(w, "Max attempts\t%d\n", *a.MaxAttempts)
	}
	fmt.Fprintf(w, "Questions\t%d\n", a.QuestionCount)
	fmt.Fprintf(w, "Published\t%t\n", a.IsPublished)
	return w.Flush()
}

func assessmentFlags(cmd *flag.FlagSet) (title, description, typ, subject *string, timeLimit, maxAttempts *int, randomize, showResults, showExplanations *bool) {
	title = cmd.String("title", "", "The assessment title.")
	description = cmd.String("description", "", "Optional description.")
	typ = cmd.String("type", assessment.TypeQuiz, "One of: quiz, exam, practice.")
	subject = cmd.String("subject", "", "The subject id.")
	timeLimit = cmd.Int("time-limit", 0, "Time limit in minutes (0 = none).")
	maxAttempts = cmd.Int("max-attempts", 0, "Attempt cap (0 = unlimited).")
	randomize = cmd.Bool("randomize", false, "Randomize question order.")
	showResults = cmd.Bool("show-results", true, "Show results after submission.")
	showExplanations = cmd.Bool("show-explanations", false, "Show explanations with results.")
	return
}

func (cli *commandLine) assessmentCreate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assessment-create", flag.ExitOnError)
	title, description, typ, subject, timeLimit, maxAttempts, randomize, showResults, showExplanations := assessmentFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}

	d := assessment.NewDraft(*subject)
	d.Title = *title
	d.Description = *description
	d.Type = *typ
	d.TimeLimitMinutes = intFlagValue(*timeLimit)
	d.MaxAttempts = intFlagValue(*maxAttempts)
	d.RandomizeQuestions = *randomize
	d.ShowResults = *showResults
	d.ShowExplanations = *showExplanations

	if _, err := cli.api.CreateAssessment(ctx, d); err != nil {
		return cli.fail(err)
	}
	return cli.renderAssessments(ctx, "")
}

func (cli *commandLine) assessmentUpdate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assessment-update", flag.ExitOnError)
	id := cmd.String("id", "", "The assessment id.")
	title, description, typ, subject, timeLimit, maxAttempts, randomize, showResults, showExplanations := assessmentFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	current, err := cli.api.GetAssessment(ctx, *id)
	if err != nil {
		return cli.fail(err)
	}

	// flags not passed on the command line keep the stored values
	visited := make(map[string]bool)
	cmd.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	d := assessment.DraftFrom(current)
	if *title != "" {
		d.Title = *title
	}
	if *description != "" {
		d.Description = *description
	}
	if visited["type"] {
		d.Type = *typ
	}
	if *subject != "" {
		d.SubjectID = *subject
	}
	if *timeLimit > 0 {
		d.TimeLimitMinutes = timeLimit
	}
	if *maxAttempts > 0 {
		d.MaxAttempts = maxAttempts
	}
	if visited["randomize"] {
		d.RandomizeQuestions = *randomize
	}
	if visited["show-results"] {
		d.ShowResults = *showResults
	}
	if visited["show-explanations"] {
		d.ShowExplanations = *showExplanations
	}

	if _, err := cli.api.UpdateAssessment(ctx, d); err != nil {
		return cli.fail(err)
	}
	return cli.renderAssessments(ctx, "")
}

func (cli *commandLine) assessmentDelete(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assessment-delete", flag.ExitOnError)
	id := cmd.String("id", "", "The assessment id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.api.DeleteAssessment(ctx, *id); err != nil {
		return cli.fail(err)
	}
	return cli.renderAssessments(ctx, "")
}

func (cli *commandLine) assessmentPublish(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assessment-publish", flag.ExitOnError)
	id := cmd.String("id", "", "The assessment id.")
	publishedStr := cmd.String("published", "true", "true to publish, false to unpublish.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}
	published, err := strconv.ParseBool(*publishedStr)
	if err != nil {
		return errors.Wrap(err, "parsing -published")
	}

	if err := cli.api.PublishAssessment(ctx, *id, published); err != nil {
		return cli.fail(err)
	}
	return cli.renderAssessments(ctx, "")
}
