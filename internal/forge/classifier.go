package forge

import (
	"fmt"
	"math"
	"math/rand"
)

// MaxDefense caps the displayed defense value.
const MaxDefense = 999

var defensePrefixes = []string{
	"Sturdy", "Armored", "Warded", "Resistant", "Bulwark", "Ironclad", "Guardian",
}

// Nominal class sizes used by the entropy estimate. Excluded sizes are
// fixed per class rather than counted from the literal pool.
const (
	upperSize         = 26
	upperExcludedSize = 25
	lowerSize         = 26
	lowerExcludedSize = 25
	digitSize         = 10
	digitExcludedSize = 8
)

// Appraisal is the loot readout for a selection and length.
type Appraisal struct {
	Rarity         Rarity
	CrackTime      CrackBucket
	DefenseLabel   string
	CrackTimeLabel string
	Entropy        float64
	CrackSeconds   float64
	PoolSize       int
	Length         int
	Defense        int
}

// Picker returns a value in [0, n). It only chooses flavor text.
type Picker func(n int) int

// Classifier appraises passwords. Entropy and rarity are deterministic;
// only the flavor strings vary between calls.
type Classifier struct {
	pick Picker
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithPicker replaces the math/rand flavor picker.
func WithPicker(p Picker) ClassifierOption {
	return func(c *Classifier) {
		c.pick = p
	}
}

// NewClassifier creates a classifier.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{pick: rand.Intn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify appraises a password of the given length drawn from sel.
func (c *Classifier) Classify(sel Selection, length int) Appraisal {
	entropy := Entropy(sel, length)
	seconds := CrackSeconds(entropy)
	bucket := CrackBucketFor(seconds)
	defense := DefenseValue(entropy)

	return Appraisal{
		PoolSize:       NominalPoolSize(sel),
		Length:         length,
		Entropy:        entropy,
		Rarity:         RarityFor(entropy),
		Defense:        defense,
		DefenseLabel:   fmt.Sprintf("%s +%d", c.choose(defensePrefixes), defense),
		CrackSeconds:   seconds,
		CrackTime:      bucket,
		CrackTimeLabel: c.choose(bucket.Flavors),
	}
}

func (c *Classifier) choose(options []string) string {
	return options[c.pick(len(options))]
}

// NominalPoolSize sums the nominal size of every selected class.
// Symbols are not affected by ambiguous-exclusion. An empty selection
// counts as lowercase.
func NominalPoolSize(sel Selection) int {
	size := 0
	if sel.Upper {
		size += pick(sel.ExcludeAmbiguous, upperExcludedSize, upperSize)
	}
	if sel.Lower {
		size += pick(sel.ExcludeAmbiguous, lowerExcludedSize, lowerSize)
	}
	if sel.Digits {
		size += pick(sel.ExcludeAmbiguous, digitExcludedSize, digitSize)
	}
	if sel.Symbols {
		size += len(SymbolChars)
	}
	if size == 0 {
		size = lowerSize
	}
	return size
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}

// Entropy estimates the password's search space in bits.
func Entropy(sel Selection, length int) float64 {
	return math.Log2(float64(NominalPoolSize(sel))) * float64(length)
}

// DefenseValue is the rounded, capped display stat for an entropy.
func DefenseValue(entropy float64) int {
	return int(math.Min(math.Round(entropy*1.5), MaxDefense))
}

// CrossoverLength returns the shortest length at which sel reaches r.
func CrossoverLength(sel Selection, r Rarity) int {
	if r.Min <= 0 {
		return 1
	}
	bits := math.Log2(float64(NominalPoolSize(sel)))
	n := int(math.Ceil(r.Min / bits))
	// Guard against float rounding at exact multiples.
	for n > 1 && Entropy(sel, n-1) >= r.Min {
		n--
	}
	for Entropy(sel, n) < r.Min {
		n++
	}
	return max(n, 1)
}
