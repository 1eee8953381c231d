// Package cli implements the billsplit command-line calculator. Every
// command loads the anonymous form from storage, applies one change and
// saves it back, so the form survives between invocations.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

// App holds what the commands share.
type App struct {
	Forms    *storage.Forms
	Calc     *calculator.Calculator
	Currency string
	Out      io.Writer
	Err      io.Writer
}

// Register adds the calculator commands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&showCmd{app: app}, "form")
	c.Register(&addCmd{app: app}, "form")
	c.Register(&setCmd{app: app}, "form")
	toggle := &toggleCmd{app: app}
	c.Register(toggle, "form")
	c.Register(subcommands.Alias("lock", toggle), "form")
	c.Register(&removeCmd{app: app}, "form")
	c.Register(&resetCmd{app: app}, "form")
	c.Register(&calcCmd{app: app}, "calculate")
}

// load returns the stored form, saving a fresh one on first use.
func (a *App) load(ctx context.Context) (*models.Form, error) {
	form, found, err := a.Forms.Load(ctx, "")
	if err != nil {
		return nil, err
	}
	if !found {
		if err := a.Forms.Save(ctx, "", form); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// update loads the form, applies fn and saves the result.
func (a *App) update(ctx context.Context, fn func(*models.Form) error) (*models.Form, error) {
	form, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(form); err != nil {
		return nil, err
	}
	if err := a.Forms.Save(ctx, "", form); err != nil {
		return nil, err
	}
	return form, nil
}

func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printForm writes the rows of both lists, numbered by position.
func (a *App) printForm(form *models.Form) {
	fmt.Fprintln(a.Out, "People:")
	for i, c := range form.Contributors {
		printRecord(a.Out, i+1, c.Record)
	}
	fmt.Fprintln(a.Out, "Events:")
	for i, e := range form.CostEvents {
		printRecord(a.Out, i+1, e.Record)
	}
}

func printRecord(w io.Writer, pos int, r models.Record) {
	mark := " "
	if r.IsFinalized() {
		mark = "x"
	}
	name := r.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(w, "  %2d [%s] %-20s %s\n", pos, mark, name, r.Amount)
}

// printReport settles the form and writes the report. The boolean result
// is false when no contributor is finalized.
func (a *App) printReport(form *models.Form) (bool, error) {
	report, err := a.Calc.Settle(calculator.Aggregate(form.Contributors, form.CostEvents))
	if errors.Is(err, calculator.ErrInsufficientContributors) {
		fmt.Fprintln(a.Err, "Please enter and lock at least one person's details.")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	fmt.Fprintln(a.Out)
	return true, report.Render(a.Out, a.Currency)
}

// target selects a record by its 1-based position in one of the lists.
type target struct {
	person int
	event  int
}

func (t *target) setFlags(f *flag.FlagSet) {
	f.IntVar(&t.person, "person", 0, "Position of the person row (1-based).")
	f.IntVar(&t.event, "event", 0, "Position of the event row (1-based).")
}

func (t *target) resolve(form *models.Form) (string, error) {
	switch {
	case t.person > 0 && t.event > 0:
		return "", errors.New("use either -person or -event, not both")
	case t.person > 0:
		if t.person > len(form.Contributors) {
			return "", fmt.Errorf("%w: person %d", models.ErrRecordNotFound, t.person)
		}
		return form.Contributors[t.person-1].ID, nil
	case t.event > 0:
		if t.event > len(form.CostEvents) {
			return "", fmt.Errorf("%w: event %d", models.ErrRecordNotFound, t.event)
		}
		return form.CostEvents[t.event-1].ID, nil
	default:
		return "", errors.New("a row is required: -person N or -event N")
	}
}
