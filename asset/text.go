package asset

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// FillLines pads every row with fill to the longest row's rune length
func FillLines(rows []string, fill rune) []string {
	longest := 0
	for _, row := range rows {
		longest = max(longest, utf8.RuneCountInString(row))
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		if pad := longest - utf8.RuneCountInString(row); pad > 0 {
			row += strings.Repeat(string(fill), pad)
		}
		out[i] = row
	}
	return out
}

// FlipLinesH mirrors each row left to right
func FlipLinesH(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		r := []rune(row)
		slices.Reverse(r)
		out[i] = string(r)
	}
	return out
}

// FlipLinesV reverses row order
func FlipLinesV(rows []string) []string {
	out := slices.Clone(rows)
	slices.Reverse(out)
	return out
}

// SplitLines splits text into rows, dropping one trailing newline and any CR
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}
