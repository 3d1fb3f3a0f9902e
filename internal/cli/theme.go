package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/cli/formatter"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// hourlogHuhTheme returns a huh theme using the formatter palette.
func hourlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(hourlogHuhTheme()).WithShowHelp(false)
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number, 0 or more")
	}
	return nil
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// reportFormValues backs the interactive report form. Fields are strings
// so blanks coerce to zero instead of failing.
type reportFormValues struct {
	Date         string
	Hours        string
	Minutes      string
	Studies      string
	Observations string
}

func reportFormFromReport(r *domain.Report) reportFormValues {
	return reportFormValues{
		Date:         r.Date.Format(time.DateOnly),
		Hours:        strconv.Itoa(r.Duration / 60),
		Minutes:      strconv.Itoa(r.Duration % 60),
		Studies:      strconv.Itoa(r.StudyHours),
		Observations: r.Observations,
	}
}

// Input converts the form into a report input; a blank date means today.
func (v reportFormValues) Input(now time.Time) domain.ReportInput {
	date, err := parseDay(v.Date)
	if err != nil || date.IsZero() {
		date = now
	}
	return domain.ReportInput{
		Date:         date,
		Duration:     domain.CoerceNonNegative(domain.ParseIntOrZero(v.Hours))*60 + domain.CoerceNonNegative(domain.ParseIntOrZero(v.Minutes)),
		StudyHours:   domain.ParseIntOrZero(v.Studies),
		Observations: v.Observations,
	}
}

func reportForm(v *reportFormValues) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Date (YYYY-MM-DD, blank for today)").Placeholder(time.Now().Format(time.DateOnly)).
				Value(&v.Date).Validate(validateOptionalDate),
			huh.NewInput().Title("Hours").Placeholder("0").Value(&v.Hours).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Minutes").Placeholder("0").Value(&v.Minutes).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Studies").Placeholder("0").Value(&v.Studies).Validate(validateNonNegativeInt),
			huh.NewText().Title("Observations").Value(&v.Observations),
		),
	)
}

func workDaysForm(selected *[]int) *huh.Form {
	options := make([]huh.Option[int], 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		options = append(options, huh.NewOption(d.String(), int(d)).Selected(slices.Contains(*selected, int(d))))
	}
	return newForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Working days").
				Options(options...).
				Value(selected),
		),
	)
}

// parseDay parses YYYY-MM-DD as local midnight; blank yields the zero time.
func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
	}
	return t, nil
}
