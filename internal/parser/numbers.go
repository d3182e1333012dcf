package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// numberWords maps spelled-out quantities, Indonesian and English,
// 1 through 20, to their integer value. Compound forms ("dua belas")
// are single table entries.
var numberWords = map[string]int{
	"satu": 1, "dua": 2, "tiga": 3, "empat": 4, "lima": 5,
	"enam": 6, "tujuh": 7, "delapan": 8, "sembilan": 9, "sepuluh": 10,
	"sebelas": 11, "dua belas": 12, "tiga belas": 13, "empat belas": 14, "lima belas": 15,
	"enam belas": 16, "tujuh belas": 17, "delapan belas": 18, "sembilan belas": 19, "dua puluh": 20,

	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

// numberAlternation is the regex alternation over all number words,
// longest first so that compound forms win over their prefixes.
var numberAlternation = buildNumberAlternation()

func buildNumberAlternation() string {
	words := make([]string, 0, len(numberWords))
	for w := range numberWords {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, "|")
}

// parseQuantity resolves a matched number token. Digit strings parse
// directly; spelled-out words resolve via the table; anything
// unrecognized degrades to 1, never an error.
func parseQuantity(token string) int {
	if token == "" {
		return 1
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n
	}
	if n, ok := numberWords[token]; ok {
		return n
	}
	return 1
}
