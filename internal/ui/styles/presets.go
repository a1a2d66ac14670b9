package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the gridline color scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default gridline theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault:   "#696969",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenGridHeader:       "#FFFFFF",
		TokenGridRowHeader:    "#777777",
		TokenGridFocusBg:      "#3498DB",
		TokenGridFocusText:    "#FFFFFF",
		TokenGridSelectionBg:  "#1A5276",
		TokenGridFlashBg:      "#7D6608",
		TokenGridEditingBg:    "#2D3436",
		TokenGridReadOnly:     "#8C8C8C",
		TokenGridPending:      "#FECA57",
		TokenGridGridline:     "#3C3C3C",
		TokenGridCompositeSep: "#696969",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",
		TokenFormBorder:    "#8C8C8C",
		TokenFormFocus:     "#FFFFFF",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextSecondary: "#BAC2DE", // subtext1
		TokenTextMuted:     "#6C7086", // overlay0

		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderHighlight: "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenGridHeader:       "#CBA6F7", // mauve
		TokenGridRowHeader:    "#7F849C", // overlay1
		TokenGridFocusBg:      "#89B4FA", // blue
		TokenGridFocusText:    "#1E1E2E", // base
		TokenGridSelectionBg:  "#45475A", // surface1
		TokenGridFlashBg:      "#F9E2AF", // yellow
		TokenGridEditingBg:    "#313244", // surface0
		TokenGridReadOnly:     "#A6ADC8", // subtext0
		TokenGridPending:      "#FAB387", // peach
		TokenGridGridline:     "#313244", // surface0
		TokenGridCompositeSep: "#6C7086", // overlay0

		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0
		TokenFormBorder:    "#6C7086", // overlay0
		TokenFormFocus:     "#CDD6F4", // text

		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow
	},
}

// DraculaPreset follows https://draculatheme.com/contribute.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#F8F8F2", // foreground
		TokenTextSecondary: "#F8F8F2",
		TokenTextMuted:     "#6272A4", // comment

		TokenBorderDefault:   "#6272A4",
		TokenBorderHighlight: "#BD93F9", // purple

		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		TokenGridHeader:       "#FF79C6", // pink
		TokenGridRowHeader:    "#6272A4",
		TokenGridFocusBg:      "#BD93F9",
		TokenGridFocusText:    "#282A36", // background
		TokenGridSelectionBg:  "#44475A", // current line
		TokenGridFlashBg:      "#F1FA8C",
		TokenGridEditingBg:    "#44475A",
		TokenGridReadOnly:     "#8BE9FD", // cyan
		TokenGridPending:      "#FFB86C", // orange
		TokenGridGridline:     "#44475A",
		TokenGridCompositeSep: "#6272A4",

		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#6272A4",
		TokenFormBorder:    "#6272A4",
		TokenFormFocus:     "#BD93F9",

		TokenToastSuccess: "#50FA7B",
		TokenToastError:   "#FF5555",
		TokenToastInfo:    "#8BE9FD",
		TokenToastWarn:    "#F1FA8C",
	},
}

// NordPreset follows https://www.nordtheme.com/docs/colors-and-palettes.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextSecondary: "#E5E9F0", // snow storm 2
		TokenTextMuted:     "#4C566A", // polar night 4

		TokenBorderDefault:   "#4C566A",
		TokenBorderHighlight: "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		TokenGridHeader:       "#88C0D0",
		TokenGridRowHeader:    "#616E88",
		TokenGridFocusBg:      "#5E81AC", // frost 4
		TokenGridFocusText:    "#ECEFF4",
		TokenGridSelectionBg:  "#3B4252", // polar night 2
		TokenGridFlashBg:      "#EBCB8B",
		TokenGridEditingBg:    "#434C5E", // polar night 3
		TokenGridReadOnly:     "#D8DEE9",
		TokenGridPending:      "#D08770", // aurora orange
		TokenGridGridline:     "#3B4252",
		TokenGridCompositeSep: "#4C566A",

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",
		TokenFormBorder:    "#4C566A",
		TokenFormFocus:     "#88C0D0",

		TokenToastSuccess: "#A3BE8C",
		TokenToastError:   "#BF616A",
		TokenToastInfo:    "#81A1C1",
		TokenToastWarn:    "#EBCB8B",
	},
}

// HighContrastPreset uses pure, saturated colors.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#FFFFFF",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderHighlight: "#00FFFF",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenGridHeader:       "#FFFF00",
		TokenGridRowHeader:    "#FFFFFF",
		TokenGridFocusBg:      "#FFFF00",
		TokenGridFocusText:    "#000000",
		TokenGridSelectionBg:  "#0000FF",
		TokenGridFlashBg:      "#FF00FF",
		TokenGridEditingBg:    "#000000",
		TokenGridReadOnly:     "#00FFFF",
		TokenGridPending:      "#FF8000",
		TokenGridGridline:     "#FFFFFF",
		TokenGridCompositeSep: "#FFFFFF",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",
		TokenFormBorder:    "#FFFFFF",
		TokenFormFocus:     "#FFFF00",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",
	},
}
