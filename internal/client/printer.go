package client

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Printer writes one line per task.
type Printer struct {
	w   io.Writer
	now func() time.Time

	idStyle    lipgloss.Style
	titleStyle lipgloss.Style
	doneStyle  lipgloss.Style
	timeStyle  lipgloss.Style
}

// NewPrinter styles output for w. Colors are dropped when w is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:          w,
		now:        time.Now,
		idStyle:    r.NewStyle().Width(6).Foreground(lipgloss.Color("8")),
		titleStyle: r.NewStyle().Bold(true),
		doneStyle:  r.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		timeStyle:  r.NewStyle().Faint(true),
	}
}

// PrintTasks writes every task in page.
func (p *Printer) PrintTasks(page *PagedResult[Task]) error {
	for _, task := range page.Items {
		if _, err := fmt.Fprintln(p.w, p.line(task)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) line(task Task) string {
	title := task.Title
	if title == "" {
		title = "(untitled)"
	}

	style := p.titleStyle
	if task.Completed {
		style = p.doneStyle
	}

	created := fmt.Sprintf("created %s (%s)",
		humanize.RelTime(task.DateCreated, p.now(), "ago", "from now"),
		task.DateCreated.Local().Format("2006-01-02 15:04"),
	)

	return p.idStyle.Render(fmt.Sprintf("#%d", task.ID)) + " " +
		style.Render(title) + "  " +
		p.timeStyle.Render(created)
}
