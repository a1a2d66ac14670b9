package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // hints, footers

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Grid cells
	GridHeaderColor       = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	GridRowHeaderColor    = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"}
	GridFocusBgColor      = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	GridFocusTextColor    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	GridSelectionBgColor  = lipgloss.AdaptiveColor{Light: "#AED6F1", Dark: "#1A5276"}
	GridFlashBgColor      = lipgloss.AdaptiveColor{Light: "#F9E79F", Dark: "#7D6608"}
	GridEditingBgColor    = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2D3436"}
	GridReadOnlyColor     = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#8C8C8C"}
	GridPendingColor      = lipgloss.AdaptiveColor{Light: "#D68910", Dark: "#FECA57"}
	GridGridlineColor     = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#3C3C3C"}
	GridCompositeSepColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormBorderColor    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormFocusColor     = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
)

// Styles built from the colors above. Rebuilt by ApplyTheme.
var (
	HeaderStyle       lipgloss.Style
	RowHeaderStyle    lipgloss.Style
	CellStyle         lipgloss.Style
	ReadOnlyCellStyle lipgloss.Style
	FocusCellStyle    lipgloss.Style
	SelectedCellStyle lipgloss.Style
	FlashCellStyle    lipgloss.Style
	EditingCellStyle  lipgloss.Style
	PendingMarkStyle  lipgloss.Style
	GridlineStyle     lipgloss.Style
	CompositeSepStyle lipgloss.Style

	StatusBarStyle lipgloss.Style
	HintStyle      lipgloss.Style
	ErrorStyle     lipgloss.Style
	PromptStyle    lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recreates all Style objects; lipgloss styles capture colors at creation time.
func rebuildStyles() {
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(GridHeaderColor)
	RowHeaderStyle = lipgloss.NewStyle().Foreground(GridRowHeaderColor).Align(lipgloss.Right)
	CellStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	ReadOnlyCellStyle = lipgloss.NewStyle().Foreground(GridReadOnlyColor).Italic(true)
	FocusCellStyle = lipgloss.NewStyle().Bold(true).
		Foreground(GridFocusTextColor).
		Background(GridFocusBgColor)
	SelectedCellStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).Background(GridSelectionBgColor)
	FlashCellStyle = lipgloss.NewStyle().Foreground(GridFocusTextColor).Background(GridFlashBgColor)
	EditingCellStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor).
		Background(GridEditingBgColor).
		Underline(true)
	PendingMarkStyle = lipgloss.NewStyle().Foreground(GridPendingColor)
	GridlineStyle = lipgloss.NewStyle().Foreground(GridGridlineColor)
	CompositeSepStyle = lipgloss.NewStyle().Foreground(GridCompositeSepColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(FormFocusColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
