package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core/question"
)

func (cli *commandLine) questions(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("questions", flag.ExitOnError)
	assessmentID := cmd.String("assessment", "", "The assessment id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assessmentID == "" {
		cmd.Usage()
		return errHelp
	}
	return cli.renderQuestions(ctx, *assessmentID)
}

func (cli *commandLine) renderQuestions(ctx context.Context, assessmentID string) error {
	list, err := cli.api.ListQuestions(ctx, assessmentID)
	if err != nil {
		if errors.Cause(err) == client.ErrStale {
			return nil
		}
		return cli.fail(err)
	}

	w := cli.table()
	fmt.Fprintln(w, "ID\tTYPE\tPOINTS\tANSWER\tTEXT")
	for _, q := range list {
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\n", q.ID, q.Type, q.Points, q.CorrectAnswer, truncate(q.Text, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, q := range list {
		if q.Type == question.TypeMultipleChoice {
			fmt.Fprintf(cli.out, "\n%s:\n", q.ID)
			for i, opt := range q.Options {
				fmt.Fprintf(cli.out, "  %s. %s\n", question.Label(i), opt)
			}
		}
	}
	return nil
}

func questionFlags(cmd *flag.FlagSet) (text, typ, options, answer, explanation, tags *string, points *float64, difficulty, wordLimit *int, multiple *bool) {
	text = cmd.String("text", "", "The question text.")
	typ = cmd.String("type", question.TypeMultipleChoice, "One of: multiple_choice, essay, fill_in_blank.")
	options = cmd.String("options", "", `Options separated by "|", e.g. "Paris|London|Berlin".`)
	answer = cmd.String("answer", "", "Correct answer: label(s) for multiple choice, free text otherwise.")
	explanation = cmd.String("explanation", "", "Optional explanation shown with results.")
	tags = cmd.String("tags", "", "Comma-separated tags.")
	points = cmd.Float64("points", 1, "Point value.")
	difficulty = cmd.Int("difficulty", 3, "Difficulty from 1 to 5.")
	wordLimit = cmd.Int("word-limit", 0, "Word limit for essay / fill-in-blank (0 = none).")
	multiple = cmd.Bool("multiple", false, "Allow multiple correct answers (multiple choice only).")
	return
}

// applyQuestionFlags routes the parsed flags through the draft's transitions
// so the same reconciliation rules apply as in interactive editing.
func applyQuestionFlags(d *question.Draft, typ, options, answer string, multiple bool, text, explanation, tags string, points float64, difficulty, wordLimit int) error {
	d.SetType(typ)

	if typ == question.TypeMultipleChoice {
		if options != "" {
			opts := strings.Split(options, "|")
			if len(opts) > question.MaxOptions {
				return errors.Errorf("at most %d options are allowed", question.MaxOptions)
			}
			for len(d.Options) < len(opts) {
				if err := d.AddOption(); err != nil {
					return err
				}
			}
			d.Options = d.Options[:len(opts)]
			for i, opt := range opts {
				d.SetOption(i, strings.TrimSpace(opt))
			}
		}
		d.SetAllowMultiple(multiple)
		if answer != "" {
			if multiple {
				// -answer is a replacement spec, not a toggle sequence
				d.CorrectAnswer = ""
				for _, label := range question.SplitAnswers(answer) {
					if err := d.ToggleLabel(label); err != nil {
						return err
					}
				}
			} else {
				d.SelectLabel(answer)
			}
		}
	} else if answer != "" {
		d.CorrectAnswer = answer
	}

	if text != "" {
		d.Text = text
	}
	if explanation != "" {
		d.Explanation = explanation
	}
	if tags != "" {
		d.Tags = question.SplitAnswers(tags)
	}
	d.Points = points
	d.Difficulty = difficulty
	if wordLimit > 0 && typ != question.TypeMultipleChoice {
		d.WordLimit = &wordLimit
	}
	return nil
}

func (cli *commandLine) questionAdd(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("question-add", flag.ExitOnError)
	assessmentID := cmd.String("assessment", "", "The assessment id.")
	text, typ, options, answer, explanation, tags, points, difficulty, wordLimit, multiple := questionFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assessmentID == "" {
		cmd.Usage()
		return errHelp
	}

	d := question.NewDraft(*assessmentID)
	if err := applyQuestionFlags(d, *typ, *options, *answer, *multiple, *text, *explanation, *tags, *points, *difficulty, *wordLimit); err != nil {
		return cli.fail(err)
	}

	if _, err := cli.api.CreateQuestion(ctx, d); err != nil {
		return cli.fail(err)
	}
	return cli.renderQuestions(ctx, *assessmentID)
}

func (cli *commandLine) questionEdit(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("question-edit", flag.ExitOnError)
	assessmentID := cmd.String("assessment", "", "The assessment id.")
	id := cmd.String("id", "", "The question id.")
	yes := cmd.Bool("yes", false, "Apply without previewing the change.")
	text, typ, options, answer, explanation, tags, points, difficulty, wordLimit, multiple := questionFlags(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assessmentID == "" || *id == "" {
		cmd.Usage()
		return errHelp
	}

	current, err := cli.api.GetQuestion(ctx, *assessmentID, *id)
	if err != nil {
		return cli.fail(err)
	}

	// flags not passed on the command line keep the stored values
	visited := make(map[string]bool)
	cmd.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	if !visited["type"] {
		*typ = current.Type
	}
	if !visited["multiple"] {
		*multiple = current.AllowMultiple
	}
	if !visited["points"] {
		*points = current.Points
	}
	if !visited["difficulty"] {
		*difficulty = current.Difficulty
	}

	d := question.DraftFrom(current)
	if err := applyQuestionFlags(d, *typ, *options, *answer, *multiple, *text, *explanation, *tags, *points, *difficulty, *wordLimit); err != nil {
		return cli.fail(err)
	}

	if !*yes {
		diff, err := questionDiff(current, d)
		if err != nil {
			return err
		}
		if diff == "" {
			fmt.Fprintln(cli.out, "no changes")
			return nil
		}
		fmt.Fprintln(cli.out, diff)
		fmt.Fprintln(cli.out, "re-run with -yes to apply")
		return nil
	}

	if _, err := cli.api.UpdateQuestion(ctx, d); err != nil {
		return cli.fail(err)
	}
	return cli.renderQuestions(ctx, *assessmentID)
}

// questionDiff renders a unified diff between the stored question and the
// edited draft so the change can be reviewed before it is submitted.
func questionDiff(current question.Question, d *question.Draft) (string, error) {
	before := renderQuestionText(current.Text, current.Options, current.CorrectAnswer)
	after := renderQuestionText(d.Text, d.Options, d.CorrectAnswer)
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "current",
		ToFile:   "edited",
		Context:  3,
	})
}

func renderQuestionText(text string, options []string, answer string) string {
	b := new(strings.Builder)
	b.WriteString(text + "\n")
	for i, opt := range options {
		b.WriteString(question.Label(i) + ". " + opt + "\n")
	}
	b.WriteString("answer: " + answer + "\n")
	return b.String()
}

func (cli *commandLine) questionDelete(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("question-delete", flag.ExitOnError)
	assessmentID := cmd.String("assessment", "", "The assessment id.")
	id := cmd.String("id", "", "The question id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assessmentID == "" || *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.api.DeleteQuestion(ctx, *assessmentID, *id); err != nil {
		return cli.fail(err)
	}
	return cli.renderQuestions(ctx, *assessmentID)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
