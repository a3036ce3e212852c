package mass

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/thegamelib/thegame.go/element"
)

// Criterion is a scalar readout of a mass function over one element, used to drive extrema
// searches. Bound methods like m.Mass, m.Belief, m.Plausibility, m.Commonality or m.Pignistic are
// the usual candidates.
type Criterion func(e *element.DiscreteElement) float64

// Extremum is an element together with the criterion value reached on it.
type Extremum struct {
	Element *element.DiscreteElement
	Value   float64
}

// Min searches the enumerated elements for the minima of the criterion, restricted to non-empty
// elements of cardinal at most maxCardinal. Ties are all returned. It returns ErrInvalidMaxCardinal
// if the cardinality bound is not positive.
//
// The elements are not checked for compatibility with the underlying mass function; enumerating an
// alien frame simply yields zeros.
func Min(criterion Criterion, maxCardinal int, elements element.Iterator) ([]Extremum, error) {
	return extrema(criterion, maxCardinal, elements, func(candidate, current float64) bool {
		return candidate < current
	})
}

// Max searches the enumerated elements for the maxima of the criterion, restricted to non-empty
// elements of cardinal at most maxCardinal. Ties are all returned. It returns ErrInvalidMaxCardinal
// if the cardinality bound is not positive.
func Max(criterion Criterion, maxCardinal int, elements element.Iterator) ([]Extremum, error) {
	return extrema(criterion, maxCardinal, elements, func(candidate, current float64) bool {
		return candidate > current
	})
}

// FormatExtrema renders an extrema search result in the form [(element1, value1), ...].
func FormatExtrema(extrema []Extremum) string {
	var builder strings.Builder
	builder.WriteByte('[')
	for i, extremum := range extrema {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("(%s, %.4f)", extremum.Element, extremum.Value))
	}
	builder.WriteByte(']')

	return builder.String()
}

func extrema(criterion Criterion, maxCardinal int, elements element.Iterator, better func(candidate, current float64) bool) ([]Extremum, error) {
	if maxCardinal <= 0 {
		return nil, ierrors.Wrapf(ErrInvalidMaxCardinal, "%d", maxCardinal)
	}

	var found []Extremum
	var current float64
	for elements.HasNext() {
		e := elements.Next()
		if cardinal := e.Cardinal(); cardinal <= 0 || cardinal > maxCardinal {
			continue
		}

		candidate := criterion(e)
		switch {
		case len(found) == 0 || better(candidate, current):
			found = append(found[:0], Extremum{Element: e, Value: candidate})
			current = candidate
		case candidate == current:
			found = append(found, Extremum{Element: e, Value: candidate})
		}
	}

	return found, nil
}
