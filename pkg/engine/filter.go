package engine

import (
	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/model"
)

// FilterName identifies a stage of the matching cascade.
type FilterName string

const (
	FilterLength       FilterName = "length"
	FilterFirstLetter  FilterName = "first_letter"
	FilterMinimum      FilterName = "minimum_letter"
	FilterSecondLetter FilterName = "second_letter"
	FilterLowestUsed   FilterName = "lowest_used"
	FilterValue        FilterName = "value"
)

// Filters lists the cascade in evaluation order.
var Filters = []FilterName{
	FilterLength,
	FilterFirstLetter,
	FilterMinimum,
	FilterSecondLetter,
	FilterLowestUsed,
	FilterValue,
}

// query is the per-segment state shared by every candidate check.
type query struct {
	constraint model.Constraint
	minSecond  int
	natural    *alphabet.Table
}

// check runs the cascade against word and returns the first filter that
// rejected it, or "" when the word matches.
func (q *query) check(word string) FilterName {
	c := q.constraint
	n := len(word)

	if n != c.Size && n != c.Size-1 {
		return FilterLength
	}
	if n == 0 {
		return FilterFirstLetter
	}
	if first, _ := q.ordinal(word[0]); first != c.FirstValue {
		return FilterFirstLetter
	}

	// One pass collects the ordinals for the remaining filters; any letter
	// outside the natural alphabet or below the threshold rejects the word.
	sum := 0
	usesLowest := false
	for i := 0; i < n; i++ {
		ord, ok := q.ordinal(word[i])
		if !ok || ord < c.LowestValue {
			return FilterMinimum
		}
		if ord == c.LowestValue {
			usesLowest = true
		}
		sum += ord
	}

	if n > 1 {
		if second, _ := q.ordinal(word[1]); second < q.minSecond {
			return FilterSecondLetter
		}
	}
	if !usesLowest {
		return FilterLowestUsed
	}
	if sum != c.WordValue || sum/n != c.Average {
		return FilterValue
	}
	return ""
}

func (q *query) ordinal(b byte) (int, bool) {
	ord, err := q.natural.Ordinal(b)
	if err != nil {
		return 0, false
	}
	return ord, true
}

// MinSecondValue walks the cipher ordinals with a counter that starts at
// first. Each ordinal is subtracted in turn; the first ordinal reached after
// the counter has dropped below 1 is the lower bound for the second letter.
// When the sequence ends first the bound is 1.
func MinSecondValue(first int, ordinals []int) int {
	counter := first
	for _, ord := range ordinals {
		if counter < 1 {
			return ord
		}
		counter -= ord
	}
	return 1
}
