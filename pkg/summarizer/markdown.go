package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(translate func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = translate
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", t("Render Summary"))

	fmt.Fprintf(&sb, "## %s\n\n", t("Input"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	if s.Input.Path != "" {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Path"), s.Input.Path)
	}
	if s.Input.Format != "" {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Format"), s.Input.Format)
	}
	fmt.Fprintf(&sb, "| %s | %dx%d |\n\n", t("Size"), s.Input.Width, s.Input.Height)

	fmt.Fprintf(&sb, "## %s\n\n", t("Captions"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Top"), captionCell(s.Captions.Top, t))
	fmt.Fprintf(&sb, "| %s | %s |\n", t("Bottom"), captionCell(s.Captions.Bottom, t))
	fmt.Fprintf(&sb, "| %s | %g |\n", t("Font Size"), s.Captions.FontSize)
	if s.Captions.Top != "" || s.Captions.Bottom != "" {
		fmt.Fprintf(&sb, "| %s | %.2f px |\n", t("Scale"), s.Text.Scale)
		fmt.Fprintf(&sb, "| %s | %d px |\n", t("Text Height"), s.Text.TextHeight)
		fmt.Fprintf(&sb, "| %s | %d px |\n", t("Padding"), s.Text.Padding)
		fmt.Fprintf(&sb, "| %s | %d px (%s) |\n", t("Outline"), s.Text.Outline, s.Text.OutlineClamp)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", t("Stripes"))
	if s.Stripes.Bands == 0 {
		fmt.Fprintf(&sb, "%s\n\n", t("Disabled"))
	} else {
		fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
		fmt.Fprintf(&sb, "| %s | %d |\n", t("Count"), s.Stripes.Count)
		fmt.Fprintf(&sb, "| %s | %d%% |\n", t("Height"), s.Stripes.HeightPercent)
		fmt.Fprintf(&sb, "| %s | %d |\n\n", t("Bands"), s.Stripes.Bands)
	}

	fmt.Fprintf(&sb, "## %s\n\n", t("Output"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", t("Item"), t("Value"))
	if s.Output.Path != "" {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("Path"), s.Output.Path)
	}
	fmt.Fprintf(&sb, "| %s | %dx%d |\n", t("Size"), s.Output.Width, s.Output.Height)
	fmt.Fprintf(&sb, "| %s | +%d / +%d px |\n", t("Expansion"), s.Output.ExpandTop, s.Output.ExpandBottom)
	if s.Output.FileSize > 0 {
		fmt.Fprintf(&sb, "| %s | %s |\n", t("File Size"), formatBytes(s.Output.FileSize))
	}
	sb.WriteString("\n")

	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" (lofistripes %s)", f.version)
	}
	fmt.Fprintf(&sb, "---\n\n%s\n", footer)

	return sb.String()
}

func captionCell(text string, t func(string) string) string {
	if text == "" {
		return "(" + t("none") + ")"
	}
	return strings.ReplaceAll(text, "|", `\|`)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
