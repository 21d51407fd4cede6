package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/pickadate/internal/constants"
)

// newVariantForm lets the host pick the rating input and summary style before a visitor starts
func newVariantForm(fm *VariantFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.InputMode]().
				Title("How should dates be rated?").
				Options(
					huh.NewOption("Buttons (five moods)", constants.InputButtons),
					huh.NewOption("Slider (0-100)", constants.InputSlider),
					huh.NewOption("Swipe (left or right)", constants.InputSwipe),
				).
				Value(&fm.Mode),
			huh.NewSelect[constants.SummaryPolicy]().
				Title("What should the results show?").
				Options(
					huh.NewOption("Top pick", constants.SummaryTopPick),
					huh.NewOption("Everything rated 70% or more", constants.SummaryThreshold),
				).
				Value(&fm.Policy),
		),
	).WithTheme(huh.ThemeDracula())
}
