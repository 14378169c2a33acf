package datemath

import "time"

// Result is a point in time found in free text.
type Result struct {
	At     time.Time
	AllDay bool   // a day was named but no time of day
	Phrase string // the matched text, lowercased
}
