package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Brommah/contentfinal-sub002/internal/client/api"
	"github.com/Brommah/contentfinal-sub002/internal/client/iocli"
	papi "github.com/Brommah/contentfinal-sub002/pkg/api"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyles = map[string]lipgloss.Style{
		"SYNCED":   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"PENDING":  lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		"CONFLICT": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"ERROR":    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
	// порядок вывода счётчиков статусов
	statusOrder = []string{"SYNCED", "PENDING", "CONFLICT", "ERROR"}
)

// render writes v as JSON or YAML, or calls text for the text format.
func (c *Cli) render(v any, text func()) error {
	switch c.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		c.io.Println(string(data))
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = c.io.Write(data)
		return err
	default:
		text()
	}
	return nil
}

func (c *Cli) success(format string, args ...any) {
	c.io.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Cli) warning(format string, args ...any) {
	c.io.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

func (c *Cli) heading(s string) {
	c.io.Println(titleStyle.Render(s))
}

func printError(io iocli.IO, err error) {
	msg := err.Error()
	if api.IsCode(err, papi.ErrCodeNotConfigured) {
		msg += "\nRun 'canvasync configure' first."
	}
	io.Println(errorStyle.Render("ERROR: " + msg))
}

func formatStatus(s string) string {
	style, ok := statusStyles[s]
	if !ok {
		return s
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return subtleStyle.Render("never")
	}
	return t.Local().Format(time.DateTime)
}

func (c *Cli) printEntityErrors(errs []papi.EntityError) {
	for _, e := range errs {
		c.io.Printf("  %s %s\n", errorStyle.Render(e.EntityID), e.Message)
	}
}

// fieldTitle returns the title field of an entity, or "".
func fieldTitle(fields []papi.Field) string {
	for _, f := range fields {
		if f.Name == "title" {
			return f.Value.Str
		}
	}
	return ""
}
