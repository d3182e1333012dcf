package parser

import (
	"fmt"
	"regexp"
)

// intentWords are the ordering-intent markers of the intent-phrase
// pattern ("mau dua burger", "pesan cola").
const intentWords = "mau|pesan|ingin|order"

// aliasMatchers holds the four compiled patterns for one keyword
// alias, in match priority order:
//
//  1. quantity before keyword  — "3 burger", "tiga burger"
//  2. keyword before quantity  — "burger 3", "burger tiga"
//  3. intent phrase            — "mau 3 burger", "pesan burger"
//  4. bare keyword             — "burger"
type aliasMatchers struct {
	quantityBefore *regexp.Regexp
	quantityAfter  *regexp.Regexp
	intentPhrase   *regexp.Regexp
	bareKeyword    *regexp.Regexp
}

func compileAlias(keyword string) aliasMatchers {
	kw := regexp.QuoteMeta(keyword)
	num := `\d+|` + numberAlternation

	return aliasMatchers{
		quantityBefore: regexp.MustCompile(fmt.Sprintf(`(%s)\s+(%s)`, num, kw)),
		quantityAfter:  regexp.MustCompile(fmt.Sprintf(`(%s)\s+(%s)`, kw, num)),
		intentPhrase:   regexp.MustCompile(fmt.Sprintf(`(?:%s)\s+(%s)?\s*(%s)`, intentWords, num, kw)),
		bareKeyword:    regexp.MustCompile(fmt.Sprintf(`\b%s\b`, kw)),
	}
}

// match tries the four patterns in priority order against the
// lower-cased transcript and returns the quantity of the first one
// that hits. Any hit yields a quantity of at least 1.
func (a aliasMatchers) match(text string) (int, bool) {
	if m := a.quantityBefore.FindStringSubmatch(text); m != nil {
		return floorQuantity(parseQuantity(m[1])), true
	}
	if m := a.quantityAfter.FindStringSubmatch(text); m != nil {
		return floorQuantity(parseQuantity(m[2])), true
	}
	if m := a.intentPhrase.FindStringSubmatch(text); m != nil {
		// The number group is optional: "pesan burger" means one.
		return floorQuantity(parseQuantity(m[1])), true
	}
	if a.bareKeyword.MatchString(text) {
		return 1, true
	}
	return 0, false
}

func floorQuantity(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
