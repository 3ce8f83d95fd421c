package forge

import (
	"math"
	"sort"
)

const (
	// AttackRate is the assumed number of guesses per second.
	AttackRate = 1e10

	secondsPerYear = 31536000
)

// CrackBucket groups crack-time estimates of the same magnitude.
type CrackBucket struct {
	ID      string
	Flavors []string
	// Below is the exclusive upper bound in seconds; +Inf for the last bucket.
	Below float64
}

// Crack bucket ids.
const (
	BucketInstant   = "instant"
	BucketSeconds   = "seconds"
	BucketMinutes   = "minutes"
	BucketHours     = "hours"
	BucketDays      = "days"
	BucketYears     = "years"
	BucketCenturies = "centuries"
	BucketEternity  = "eternity"
)

var crackBuckets = []CrackBucket{
	{ID: BucketInstant, Below: 1, Flavors: []string{
		"One-shot kill", "Evaporated on contact", "Critical hit", "Not even ashes remain",
	}},
	{ID: BucketSeconds, Below: 60, Flavors: []string{
		"A matter of seconds", "One sip of water", "Blink and it's gone",
	}},
	{ID: BucketMinutes, Below: 3600, Flavors: []string{
		"Instant noodles aren't even ready", "About one song", "Before you finish brushing",
	}},
	{ID: BucketHours, Below: 86400, Flavors: []string{
		"One binge-watch session", "Broken by morning", "About one ball game",
	}},
	{ID: BucketDays, Below: secondsPerYear, Flavors: []string{
		"Cracked before your trip ends", "Shorter than a cold", "One season of a show",
	}},
	{ID: BucketYears, Below: 1000 * secondsPerYear, Flavors: []string{
		"Wait until retirement", "Your kids will be grown", "Seas turn to fields",
	}},
	{ID: BucketCenturies, Below: 1e9 * secondsPerYear, Flavors: []string{
		"Dynasties will fall", "Civilizations rise and crumble", "An ice age passes",
	}},
	{ID: BucketEternity, Below: math.Inf(1), Flavors: []string{
		"The end of the universe", "Eternity", "Time itself will perish",
	}},
}

// CrackBuckets returns the bucket table, fastest first.
func CrackBuckets() []CrackBucket {
	out := make([]CrackBucket, len(crackBuckets))
	copy(out, crackBuckets)
	return out
}

// CrackSeconds estimates the average time to find a password of the given
// entropy: half the search space at AttackRate guesses per second.
func CrackSeconds(entropy float64) float64 {
	return math.Exp2(entropy) / AttackRate / 2
}

// CrackBucketFor returns the first bucket whose bound exceeds seconds.
func CrackBucketFor(seconds float64) CrackBucket {
	i := sort.Search(len(crackBuckets), func(i int) bool {
		return seconds < crackBuckets[i].Below
	})
	if i == len(crackBuckets) {
		// +Inf or NaN
		return crackBuckets[len(crackBuckets)-1]
	}
	return crackBuckets[i]
}
