package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mmynk/billsplit/internal/models"
)

// showCmd prints the form, and the report when someone is locked.
type showCmd struct{ app *App }

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show the people and events on the form" }
func (*showCmd) Usage() string {
	return `billsplit show

  Lists every row. Locked rows are marked [x]. When at least one person is
  locked the split is recalculated and printed too.
`
}
func (*showCmd) SetFlags(*flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form, err := c.app.load(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printForm(form)
	if form.HasFinalizedContributor() {
		if _, err := c.app.printReport(form); err != nil {
			return c.app.fail(err)
		}
	}
	return subcommands.ExitSuccess
}

// addCmd appends an empty row.
type addCmd struct {
	app  *App
	kind string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an empty person or event row" }
func (*addCmd) Usage() string {
	return `billsplit add [-kind person|event]
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "person", "Row kind: person or event.")
}

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := models.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(c.app.Err, err)
		return subcommands.ExitUsageError
	}
	form, err := c.app.update(ctx, func(f *models.Form) error {
		_, err := f.Add(kind)
		return err
	})
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printForm(form)
	return subcommands.ExitSuccess
}

// setCmd edits the name and/or amount of an unlocked row.
type setCmd struct {
	app    *App
	target target
	name   string
	amount string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set the name or amount of a row" }
func (*setCmd) Usage() string {
	return `billsplit set (-person N | -event N) [-name <name>] [-amount <amount>]

  Edits an unlocked row. Locked rows must be unlocked with toggle first.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	c.target.setFlags(f)
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var name, amount *string
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			name = &c.name
		case "amount":
			amount = &c.amount
		}
	})
	if name == nil && amount == nil {
		fmt.Fprintln(c.app.Err, "nothing to set: use -name and/or -amount")
		return subcommands.ExitUsageError
	}

	form, err := c.app.update(ctx, func(form *models.Form) error {
		id, err := c.target.resolve(form)
		if err != nil {
			return err
		}
		return form.Edit(id, name, amount)
	})
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printForm(form)
	return subcommands.ExitSuccess
}

// toggleCmd locks or unlocks a row.
type toggleCmd struct {
	app    *App
	target target
}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "lock or unlock a row" }
func (*toggleCmd) Usage() string {
	return `billsplit toggle (-person N | -event N)

  Locks an unlocked row, or unlocks a locked one. Only locked rows are
  included in the calculation. A blank name is replaced by its
  placeholder when the row is locked.
`
}

func (c *toggleCmd) SetFlags(f *flag.FlagSet) { c.target.setFlags(f) }

func (c *toggleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form, err := c.app.update(ctx, func(form *models.Form) error {
		id, err := c.target.resolve(form)
		if err != nil {
			return err
		}
		_, err = form.Toggle(id)
		return err
	})
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printForm(form)
	return subcommands.ExitSuccess
}

// removeCmd deletes a row.
type removeCmd struct {
	app    *App
	target target
}

func (*removeCmd) Name() string     { return "rm" }
func (*removeCmd) Synopsis() string { return "remove a row" }
func (*removeCmd) Usage() string {
	return `billsplit rm (-person N | -event N)
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) { c.target.setFlags(f) }

func (c *removeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form, err := c.app.update(ctx, func(form *models.Form) error {
		id, err := c.target.resolve(form)
		if err != nil {
			return err
		}
		return form.Remove(id)
	})
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printForm(form)
	return subcommands.ExitSuccess
}

// resetCmd starts over with an empty form.
type resetCmd struct{ app *App }

func (*resetCmd) Name() string           { return "reset" }
func (*resetCmd) Synopsis() string       { return "discard the form and start over" }
func (*resetCmd) Usage() string          { return "billsplit reset\n" }
func (*resetCmd) SetFlags(*flag.FlagSet) {}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.app.Forms.Reset(ctx, ""); err != nil {
		return c.app.fail(err)
	}
	form, err := c.app.load(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.printForm(form)
	return subcommands.ExitSuccess
}

// calcCmd prints the split of the locked rows.
type calcCmd struct{ app *App }

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "calculate the split" }
func (*calcCmd) Usage() string {
	return `billsplit calc

  Splits the total of the locked events equally among the locked people
  and prints what each person gets back or owes.
`
}
func (*calcCmd) SetFlags(*flag.FlagSet) {}

func (c *calcCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	form, err := c.app.load(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	ok, err := c.app.printReport(form)
	if err != nil {
		return c.app.fail(err)
	}
	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
