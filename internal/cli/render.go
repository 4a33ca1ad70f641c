package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/welloca/railsui/models"
)

const swatchWidth = 4

type settingsStyles struct {
	title lipgloss.Style
	key   lipgloss.Style
	muted lipgloss.Style
	box   lipgloss.Style
	r     *lipgloss.Renderer
}

func newSettingsStyles(w io.Writer) settingsStyles {
	r := lipgloss.NewRenderer(w)
	return settingsStyles{
		title: r.NewStyle().Bold(true),
		key:   r.NewStyle().Width(18),
		muted: r.NewStyle().Faint(true),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		r:     r,
	}
}

func (st settingsStyles) swatch(hex string) string {
	return st.r.NewStyle().
		Background(lipgloss.Color("#" + hex)).
		Render(strings.Repeat(" ", swatchWidth))
}

// renderSettings writes a boxed table of settings, with a colour swatch
// next to every palette entry.
func renderSettings(w io.Writer, s *models.Settings, path string) error {
	st := newSettingsStyles(w)

	orNone := func(v string) string {
		if v == "" {
			return st.muted.Render("(none)")
		}
		return v
	}
	framework := func(fw models.Framework) string {
		if fw == models.FrameworkNone {
			return st.muted.Render(fw.Label())
		}
		return fw.Label() + " (" + fw.String() + ")"
	}
	color := func(hex string) string {
		return st.swatch(hex) + " #" + hex
	}

	rows := [][2]string{
		{models.KeyApplicationName, s.ApplicationName()},
		{models.KeyCSSFramework, framework(s.CSSFramework())},
		{models.KeyPrimaryColor, color(s.PrimaryColor())},
		{models.KeySecondaryColor, color(s.SecondaryColor())},
		{models.KeyTertiaryColor, color(s.TertiaryColor())},
		{models.KeyFontFamily, s.FontFamily()},
		{models.KeyTheme, orNone(s.Theme())},
		{models.KeyAbout, strconv.FormatBool(s.About())},
		{models.KeyPricing, strconv.FormatBool(s.Pricing())},
		{models.KeyBlog, strconv.FormatBool(s.Blog())},
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, st.title.Render(s.ApplicationName()), st.muted.Render(path))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, st.key.Render(row[0]), row[1]))
	}

	_, err := fmt.Fprintln(w, st.box.Render(strings.Join(lines, "\n")))
	return err
}
