package cli

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tradecoach/internal/models"
)

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatPnL formats a run's P&L. Fills are priced against a reference of
// 100, so points read as percent.
func FormatPnL(pnl float64) string {
	return FormatPercent(pnl)
}

// FormatPrice formats a fill price.
func FormatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *price)
}

// FormatRate formats a 0..1 ratio as a percentage.
func FormatRate(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}

// FormatClock formats a decision timestamp as wall-clock UTC.
func FormatClock(t time.Time) string {
	return t.UTC().Format("15:04") + " UTC"
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

// FormatIntensity renders an intensity as a ten-cell bar.
func FormatIntensity(intensity int) string {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 10 {
		intensity = 10
	}
	return strings.Repeat("█", intensity) + strings.Repeat("░", 10-intensity) + fmt.Sprintf(" %d/10", intensity)
}

// FormatAction renders an action with its direction, e.g. "BUY (short)".
func FormatAction(action models.Action, dir models.Direction) string {
	label := strings.ToUpper(strings.ReplaceAll(string(action), "_", " "))
	if dir == models.DirectionNone {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, dir)
}

// Humanize turns a snake_case enum into a sentence-case label.
func Humanize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

// HumanizeAll humanizes and joins a list of enum values.
func HumanizeAll[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Humanize(string(v))
	}
	return strings.Join(parts, ", ")
}

// TruncateString truncates a string to max runes with ellipsis.
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// WrapText breaks text into lines no longer than width runes where possible.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// FormatScore formats a 0-100 coaching score.
func FormatScore(score int) string {
	return fmt.Sprintf("%d/100", score)
}

// FormatCount formats an integer with thousands separators.
func FormatCount(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}

// FormatFloat formats a mean to two decimals.
func FormatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
