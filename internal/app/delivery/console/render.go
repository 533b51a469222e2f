package console

import (
	"context"
	"strings"

	"medicare-frontend/internal/app/delivery/shell"
	"medicare-frontend/internal/app/delivery/table"
	"medicare-frontend/internal/pkg/constvars"

	"go.uber.org/zap"
)

// render draws the current view, reloading its data first when reload is
// set.
func (c *Console) render(ctx context.Context, reload bool) {
	identity, ok := c.shell.Identity()
	if !ok {
		return
	}
	c.printf("\n[%s] %s (%s)\n", strings.Join(menuLabels(c.shell), " | "), identity.Name, identity.Role.Label())

	screen := c.shell.ActiveScreen()
	if screen == nil {
		c.table = nil
		dashboard := c.shell.Dashboard()
		if reload {
			dashboard.Refresh(ctx)
		}
		state := dashboard.Snapshot()
		c.printf("%s\n%s\n\n", shell.Greeting(identity), shell.DashboardSubtitle())
		for _, card := range shell.StatCards(identity, state.Summary) {
			c.printf("  %-22s %d\n", card.Title, card.Value)
		}
		c.fail(state.ActiveError)
		return
	}

	if reload {
		screen.Refresh(ctx)
	}
	c.printf("%s\n", screen.Heading())
	c.fail(screen.State().ActiveError)

	current, err := screen.Table(ctx, identity, c.confirmer)
	if err != nil {
		c.log.Error("Console.render cannot project table",
			zap.String(constvars.LoggingViewKey, screen.ID()),
			zap.Error(err),
		)
		c.fail(constvars.ErrClientOperationFailed)
		c.table = nil
		return
	}
	c.table = &current

	if err := table.WriteText(c.out, current, c.colorize); err != nil {
		c.log.Error("Console.render cannot write table", zap.Error(err))
		return
	}
	c.printf("%s: add | edit <row> | delete <row>\n", screen.AddLabel())
}

func menuLabels(sh *shell.Shell) []string {
	items := sh.Menu()
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	return labels
}
