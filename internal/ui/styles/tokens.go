// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
// These are the keys users can override under theme.colors.
type ColorToken string

const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Grid
	TokenGridHeader       ColorToken = "grid.header"
	TokenGridRowHeader    ColorToken = "grid.row_header"
	TokenGridFocusBg      ColorToken = "grid.focus.bg"
	TokenGridFocusText    ColorToken = "grid.focus.text"
	TokenGridSelectionBg  ColorToken = "grid.selection.bg"
	TokenGridFlashBg      ColorToken = "grid.flash.bg"
	TokenGridEditingBg    ColorToken = "grid.editing.bg"
	TokenGridReadOnly     ColorToken = "grid.readonly"
	TokenGridPending      ColorToken = "grid.pending"
	TokenGridGridline     ColorToken = "grid.gridline"
	TokenGridCompositeSep ColorToken = "grid.composite"

	// Overlays and prompts
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"
	TokenFormBorder    ColorToken = "form.border"
	TokenFormFocus     ColorToken = "form.focus"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,

		TokenBorderDefault,
		TokenBorderHighlight,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenGridHeader,
		TokenGridRowHeader,
		TokenGridFocusBg,
		TokenGridFocusText,
		TokenGridSelectionBg,
		TokenGridFlashBg,
		TokenGridEditingBg,
		TokenGridReadOnly,
		TokenGridPending,
		TokenGridGridline,
		TokenGridCompositeSep,

		TokenOverlayTitle,
		TokenOverlayBorder,
		TokenFormBorder,
		TokenFormFocus,

		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,
	}
}
