package views

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cn joins class lists, dropping blanks and repeated classes.
func Cn(inputs ...string) string {
	seen := make(map[string]bool)
	var out []string
	for _, in := range inputs {
		for _, c := range strings.Fields(in) {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}

var (
	slugSpace   = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^\w-]+`)
	slugDashes  = regexp.MustCompile(`-{2,}`)
)

// Slugify turns text into a lowercase ASCII url segment.
func Slugify(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, text)
	if err != nil {
		plain = text
	}
	s := strings.ToLower(strings.TrimSpace(plain))
	s = slugSpace.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders t as a long Spanish date, e.g. "5 de marzo de 2024".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
}
