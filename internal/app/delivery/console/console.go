package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"medicare-frontend/internal/app/contracts"
	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/delivery/table"
	"medicare-frontend/internal/app/services/forms"
	"medicare-frontend/internal/pkg/constvars"
	"medicare-frontend/internal/pkg/utils"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

const helpText = `Commands:
  menu             list the views you can open
  open <view>      switch to a view
  refresh          reload the current view
  add              create a record in the current view
  edit <row>       edit the record on a row
  delete <row>     delete the record on a row
  logout           end the session
  quit             leave the program
  help             show this text`

var errQuit = errors.New("quit")

// Console runs the shell as a read-eval loop over a terminal.
type Console struct {
	shell     *shell.Shell
	prompter  Prompter
	out       io.Writer
	colorize  bool
	log       *zap.Logger
	confirmer contracts.Confirmer

	table *table.Table
}

func New(sh *shell.Shell, prompter Prompter, out io.Writer, colorize bool, logger *zap.Logger) *Console {
	return &Console{
		shell:     sh,
		prompter:  prompter,
		out:       out,
		colorize:  colorize,
		log:       logger,
		confirmer: confirmer(prompter),
	}
}

// Run drives the session until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	if err := c.shell.Start(ctx); err != nil {
		c.fail(constvars.ErrClientSessionUnavailable)
	}

	c.printf("MediCare\nHospital Management System\n\n")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if c.shell.Authenticated() {
			err = c.command(ctx)
		} else {
			err = c.authenticate(ctx)
		}

		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			c.printf("Goodbye.\n")
			return nil
		case err != nil:
			return err
		}
	}
}

func (c *Console) authenticate(ctx context.Context) error {
	if notice := c.shell.TakeNotice(); notice != "" {
		c.success(notice)
	}

	answer, err := c.prompter.Line("login, register or quit? ")
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "login":
		if err := c.fill(ctx, c.shell.LoginForm()); err != nil {
			return err
		}
		if c.shell.Authenticated() {
			c.render(ctx, true)
		}
	case "register":
		return c.fill(ctx, c.shell.RegisterForm())
	case "quit", "exit":
		return errQuit
	default:
		c.printf("Type login, register or quit.\n")
	}
	return nil
}

func (c *Console) command(ctx context.Context) error {
	line, err := c.prompter.Line(fmt.Sprintf("%s> ", c.shell.CurrentView()))
	if err != nil {
		return err
	}
	ctx, requestID := utils.EnsureRequestID(ctx)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	c.log.Debug("Console.Command received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("command", name),
		zap.String(constvars.LoggingViewKey, c.shell.CurrentView()),
	)

	switch name {
	case "help", "?":
		c.printf("%s\n", helpText)
	case "menu":
		c.menu()
	case "open":
		if len(args) != 1 {
			c.printf("Usage: open <view>\n")
			return nil
		}
		c.shell.Navigate(strings.ToLower(args[0]))
		c.render(ctx, true)
	case "refresh":
		c.render(ctx, true)
	case "add":
		return c.add(ctx)
	case "edit":
		return c.edit(ctx, args)
	case "delete":
		return c.delete(ctx, args)
	case "logout":
		c.shell.Logout(ctx)
		c.table = nil
		c.printf("Logged out.\n")
	case "quit", "exit":
		return errQuit
	default:
		c.printf("Unknown command %q. Type help for the list.\n", name)
	}
	return nil
}

func (c *Console) menu() {
	for _, item := range c.shell.Menu() {
		marker := " "
		if item.ID == c.shell.CurrentView() {
			marker = "*"
		}
		c.printf("%s %-14s %s\n", marker, item.ID, item.Label)
	}
}

func (c *Console) add(ctx context.Context) error {
	screen := c.shell.ActiveScreen()
	if screen == nil {
		c.printf("Nothing to add here. Open a view first.\n")
		return nil
	}
	identity, _ := c.shell.Identity()
	if err := c.fill(ctx, screen.OpenCreateForm(ctx, identity)); err != nil {
		return err
	}
	screen.CloseForm()
	c.render(ctx, false)
	return nil
}

func (c *Console) edit(ctx context.Context, args []string) error {
	screen, current, row, ok := c.target(ctx, args, "edit")
	if !ok {
		return nil
	}
	if !current.Edit(row) {
		c.printf("There is no row %d.\n", row)
		return nil
	}
	if form := screen.ActiveForm(); form != nil {
		if err := c.fill(ctx, form); err != nil {
			return err
		}
	}
	screen.CloseForm()
	c.render(ctx, false)
	return nil
}

func (c *Console) delete(ctx context.Context, args []string) error {
	_, current, row, ok := c.target(ctx, args, "delete")
	if !ok {
		return nil
	}
	if !current.Delete(row) {
		c.printf("There is no row %d.\n", row)
		return nil
	}
	c.render(ctx, false)
	return nil
}

// target resolves the row argument against the table last shown.
func (c *Console) target(ctx context.Context, args []string, command string) (shell.ResourceScreen, table.Table, int, bool) {
	screen := c.shell.ActiveScreen()
	if screen == nil {
		c.printf("Open a view first.\n")
		return nil, table.Table{}, 0, false
	}
	if len(args) != 1 {
		c.printf("Usage: %s <row>\n", command)
		return nil, table.Table{}, 0, false
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		c.printf("Row must be a number.\n")
		return nil, table.Table{}, 0, false
	}
	if c.table == nil {
		c.render(ctx, true)
	}
	if c.table == nil {
		return nil, table.Table{}, 0, false
	}
	return screen, *c.table, row, true
}

// fill prompts for every field, submits, and offers a retry on failure.
// An empty answer keeps the current value.
func (c *Console) fill(ctx context.Context, form forms.Form) error {
	if message := form.Error(); message != "" {
		c.fail(message)
	}
	c.printf("\n%s\n", form.Title())

	for {
		for i := 0; i < len(form.Fields()); i++ {
			field := form.Fields()[i]
			value, err := c.ask(field)
			if err != nil {
				return err
			}
			if value == field.Value {
				continue
			}
			if err := form.Set(field.Name, value); err != nil {
				c.fail(err.Error())
				i--
			}
		}

		if err := form.Submit(ctx); err == nil {
			c.success(fmt.Sprintf("%s: done.", form.Title()))
			return nil
		}
		c.fail(form.Error())

		retry, err := c.confirmer.Confirm(ctx, "Try again?")
		if err != nil || !retry {
			return err
		}
	}
}

func (c *Console) ask(field forms.Field) (string, error) {
	label := field.Label
	if field.Required {
		label += " *"
	}

	switch field.Type {
	case forms.FieldPassword:
		return c.prompter.Secret(label + ": ")
	case forms.FieldSelect:
		if len(field.Options) == 0 {
			c.printf("%s: no options available\n", label)
			return field.Value, nil
		}
		for i, option := range field.Options {
			c.printf("  %d) %s\n", i+1, option.Label)
		}
		answer, err := c.prompter.Line(fmt.Sprintf("%s [%s]: ", label, field.Value))
		if err != nil {
			return "", err
		}
		return pickOption(field, strings.TrimSpace(answer)), nil
	}

	prompt := fmt.Sprintf("%s: ", label)
	if field.Value != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, field.Value)
	}
	answer, err := c.prompter.Line(prompt)
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return field.Value, nil
	}
	return answer, nil
}

// pickOption accepts an option number or value. Anything else keeps the
// current value.
func pickOption(field forms.Field, answer string) string {
	if answer == "" {
		return field.Value
	}
	if index, err := strconv.Atoi(answer); err == nil && index >= 1 && index <= len(field.Options) {
		return field.Options[index-1].Value
	}
	for _, option := range field.Options {
		if strings.EqualFold(option.Value, answer) {
			return option.Value
		}
	}
	return field.Value
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) fail(message string) {
	if message == "" {
		return
	}
	c.printf("%s\n", c.paint(color.FgRed, "Error: "+message))
}

func (c *Console) success(message string) {
	c.printf("%s\n", c.paint(color.FgGreen, message))
}

func (c *Console) paint(attribute color.Attribute, text string) string {
	if !c.colorize {
		return text
	}
	painter := color.New(attribute)
	painter.EnableColor()
	return painter.Sprint(text)
}
