package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders lets packages that cache styles refresh them after ApplyTheme.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback run after every theme change.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// tokenTargets maps each token to the color variables it sets.
func tokenTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:      {&TextPrimaryColor},
		TokenTextSecondary:    {&TextSecondaryColor},
		TokenTextMuted:        {&TextMutedColor},
		TokenBorderDefault:    {&BorderDefaultColor},
		TokenBorderHighlight:  {&BorderHighlightFocusColor},
		TokenStatusSuccess:    {&StatusSuccessColor},
		TokenStatusWarning:    {&StatusWarningColor},
		TokenStatusError:      {&StatusErrorColor},
		TokenGridHeader:       {&GridHeaderColor},
		TokenGridRowHeader:    {&GridRowHeaderColor},
		TokenGridFocusBg:      {&GridFocusBgColor},
		TokenGridFocusText:    {&GridFocusTextColor},
		TokenGridSelectionBg:  {&GridSelectionBgColor},
		TokenGridFlashBg:      {&GridFlashBgColor},
		TokenGridEditingBg:    {&GridEditingBgColor},
		TokenGridReadOnly:     {&GridReadOnlyColor},
		TokenGridPending:      {&GridPendingColor},
		TokenGridGridline:     {&GridGridlineColor},
		TokenGridCompositeSep: {&GridCompositeSepColor},
		TokenOverlayTitle:     {&OverlayTitleColor},
		TokenOverlayBorder:    {&OverlayBorderColor},
		TokenFormBorder:       {&FormBorderColor},
		TokenFormFocus:        {&FormFocusColor},
		TokenToastSuccess:     {&ToastBorderSuccessColor},
		TokenToastError:       {&ToastBorderErrorColor},
		TokenToastInfo:        {&ToastBorderInfoColor},
		TokenToastWarn:        {&ToastBorderWarnColor},
	}
}

// ApplyTheme resolves the default preset, then cfg.Preset, then per-token
// overrides, and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	colors, err := ResolveColors(cfg)
	if err != nil {
		return err
	}

	targets := tokenTargets()
	for token, hex := range colors {
		for _, c := range targets[token] {
			*c = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
	rebuildStyles()
	return nil
}

// ResolveColors returns the final token colors for cfg without applying them.
func ResolveColors(cfg ThemeConfig) (map[ColorToken]string, error) {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return nil, fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !slices.Contains(AllTokens(), token) {
			return nil, fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return nil, fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}
	return colors, nil
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
