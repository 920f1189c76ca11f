// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"
	"strings"
)

// Format renders the date against a template of field characters and
// literal text, eg:
//
//	Format("EEEE, MMMM d, y", d) // "Thursday, March 15, 2007"
//
// A run of the same letter is a field whose length selects the rendering:
//
//	y  year: y unpadded, yy last two digits, yyy/yyyy zero padded
//	Y  ISO8601 week-year, as y
//	Q  quarter: Q/QQ/QQQQQ number, QQQ "Q"+number, QQQQ with ordinal suffix
//	M  month: M number, MM zero padded, MMM "Mar", MMMM "March", MMMMM "M"
//	w  ISO8601 week number: w, ww zero padded
//	d  day of month: d, dd zero padded, ddd with ordinal suffix
//	D  day of year: D, DD, DDD progressively zero padded
//	E  weekday: E/EE/EEE "Thu", EEEE "Thursday", EEEEE "T", EEEEEE "Th"
//	e  ISO8601 weekday number: e, ee
//
// Any other letter, or an unsupported length of a supported one, renders
// as the empty string. Non-letter characters are copied through. Letters
// can be escaped by enclosing them in single quotes and a doubled single
// quote denotes one literal quote character.
func Format(layout string, d Date) string {
	var out strings.Builder
	for _, tok := range tokenize(layout) {
		if tok.field == 0 {
			out.WriteString(tok.literal)
			continue
		}
		out.WriteString(renderField(tok.field, tok.length, d))
	}
	return out.String()
}

// token is either a field (a letter and the length of its run) or a run of
// literal text.
type token struct {
	field   byte
	length  int
	literal string
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func tokenize(layout string) []token {
	var toks []token
	for i := 0; i < len(layout); {
		switch c := layout[i]; {
		case isLetter(c):
			j := i
			for j < len(layout) && layout[j] == c {
				j++
			}
			toks = append(toks, token{field: c, length: j - i})
			i = j
		case c == '\'':
			lit, j := quoted(layout, i)
			toks = append(toks, token{literal: lit})
			i = j
		default:
			j := i
			for j < len(layout) && !isLetter(layout[j]) && layout[j] != '\'' {
				j++
			}
			toks = append(toks, token{literal: layout[i:j]})
			i = j
		}
	}
	return toks
}

// quoted consumes a single quoted section starting at layout[i], which
// must be a quote. A doubled quote, inside or outside a section, is one
// literal quote character. An unterminated section runs to the end of the
// layout.
func quoted(layout string, i int) (string, int) {
	if i+1 < len(layout) && layout[i+1] == '\'' {
		return "'", i + 2
	}
	var out strings.Builder
	i++
	for i < len(layout) {
		if layout[i] == '\'' {
			if i+1 < len(layout) && layout[i+1] == '\'' {
				out.WriteByte('\'')
				i += 2
				continue
			}
			return out.String(), i + 1
		}
		out.WriteByte(layout[i])
		i++
	}
	return out.String(), i
}

func renderField(field byte, length int, d Date) string {
	switch field {
	case 'y':
		if length == 5 {
			length = 4
		}
		return renderYear(d.Year(), length)
	case 'Y':
		return renderYear(d.WeekYear(), length)
	case 'Q':
		switch q := d.Quarter(); length {
		case 1, 2, 5:
			return strconv.Itoa(q)
		case 3:
			return "Q" + strconv.Itoa(q)
		case 4:
			return withOrdinalSuffix(q)
		}
	case 'M':
		switch m := d.Month(); length {
		case 1:
			return strconv.Itoa(int(m))
		case 2:
			return padInt(int(m), 2)
		case 3:
			return m.Abbrev()
		case 4:
			return m.String()
		case 5:
			return m.String()[:1]
		}
	case 'w':
		switch w := d.WeekNumber(); length {
		case 1:
			return strconv.Itoa(w)
		case 2:
			return padInt(w, 2)
		}
	case 'd':
		switch day := d.Day(); length {
		case 1:
			return strconv.Itoa(day)
		case 2:
			return padInt(day, 2)
		case 3:
			// Common extension, not part of the unicode pattern table.
			return withOrdinalSuffix(day)
		}
	case 'D':
		if length >= 1 && length <= 3 {
			return padInt(d.OrdinalDay(), length)
		}
	case 'E':
		switch wd := d.Weekday(); length {
		case 1, 2, 3:
			return wd.Abbrev()
		case 4:
			return wd.String()
		case 5:
			return wd.String()[:1]
		case 6:
			return wd.String()[:2]
		}
	case 'e':
		if length == 1 || length == 2 {
			return strconv.Itoa(int(d.Weekday()))
		}
	}
	return ""
}

func renderYear(year, length int) string {
	switch length {
	case 1:
		return strconv.Itoa(year)
	case 2:
		// Last two digits, keeping the sign for negative years.
		sign := ""
		if year < 0 {
			sign, year = "-", -year
		}
		return sign + padInt(year%100, 2)
	case 3:
		return padInt(year, 3)
	case 4:
		return padInt(year, 4)
	}
	return ""
}

// padInt zero pads v to at least the given width; negative values render
// a leading '-' followed by the padded absolute value.
func padInt(v, width int) string {
	if v < 0 {
		return "-" + padInt(-v, width)
	}
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// withOrdinalSuffix renders n with the English ordinal suffix, eg. 1st,
// 2nd, 3rd, 4th and 11th through 13th.
func withOrdinalSuffix(n int) string {
	return strconv.Itoa(n) + ordinalSuffix(n)
}

func ordinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if n%100/10 == 1 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
