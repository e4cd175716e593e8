package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pathHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func pathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(pathHuhTheme()).WithShowHelp(false)
}

// runForm runs f and maps a user abort to errAborted.
func runForm(f *huh.Form) error {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errAborted
		}
		return err
	}
	return nil
}

var errAborted = errors.New("aborted")

// weeklyForm builds the Sunday reflection wizard: one page per prompt.
func weeklyForm(answers map[string]*string) *huh.Form {
	groups := make([]*huh.Group, 0, len(service.WeeklyPrompts))
	for i, q := range service.WeeklyPrompts {
		v := answers[q.Key]
		groups = append(groups, huh.NewGroup(
			huh.NewText().
				Title(fmt.Sprintf("%d/%d · %s", i+1, len(service.WeeklyPrompts), q.Label)).
				Description(q.Question).
				Value(v),
		))
	}
	return newForm(groups...)
}

// reflectionForm asks for a single reflection.
func reflectionForm(day int, title string, text *string) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewText().
			Title(fmt.Sprintf("Day %d · %s", day, title)).
			Description(service.DailyPrompt).
			Value(text).
			Validate(func(s string) error {
				if len(s) == 0 {
					return errors.New("write at least a few words")
				}
				return nil
			}),
	))
}

// officeChangeForm asks what to do with existing progress when the office
// changes.
func officeChangeForm(from, to domain.Office, reset *bool) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Switch from %s to %s", from.Label(), to.Label())).
			Description("Start the path over, or keep your current day and history?").
			Affirmative("Start over").
			Negative("Keep progress").
			Value(reset),
	))
}

func confirmForm(title string, ok *bool) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(ok),
	))
}

// recoveryChoiceForm offers the answers to an open recovery prompt.
func recoveryChoiceForm(r *domain.RecoveryPrompt, choice *string) *huh.Form {
	var options []huh.Option[string]
	switch r.Kind {
	case domain.RecoveryCatchUp:
		options = []huh.Option[string]{
			huh.NewOption("Catch up on missed days", "catchup"),
			huh.NewOption(fmt.Sprintf("Resume at day %d with grace", r.TargetDay), "resume"),
		}
	case domain.RecoveryRecenter:
		options = []huh.Option[string]{
			huh.NewOption(fmt.Sprintf("Restart at day %d", r.TargetDay), "restart"),
		}
	}
	options = append(options, huh.NewOption("Not now", "dismiss"))
	return newForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(r.Message).
			Options(options...).
			Value(choice),
	))
}

// reviewChoiceForm offers the two ways out of a review transition.
func reviewChoiceForm(t *domain.PendingTransition, choice *string) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(service.ReviewTitle).
			Description(service.ReviewMessage(t)).
			Options(
				huh.NewOption(service.ReviewMissedLabel, "review"),
				huh.NewOption(service.ProceedLabel, "silver"),
			).
			Value(choice),
	))
}
