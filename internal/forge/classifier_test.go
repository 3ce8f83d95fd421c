package forge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstPicker(int) int { return 0 }

func lastPicker(n int) int { return n - 1 }

func TestNominalPoolSize(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		expected int
	}{
		{name: "nothing selected", sel: Selection{}, expected: 26},
		{name: "nothing selected excluding ambiguous", sel: Selection{ExcludeAmbiguous: true}, expected: 26},
		{name: "lower and digits", sel: Selection{Lower: true, Digits: true}, expected: 36},
		{name: "everything", sel: AllClasses(), expected: 88},
		{name: "everything excluding ambiguous", sel: Selection{Upper: true, Lower: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}, expected: 84},
		{name: "symbols unaffected by exclusion", sel: Selection{Symbols: true, ExcludeAmbiguous: true}, expected: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NominalPoolSize(tt.sel))
		})
	}
}

func TestClassifier_Examples(t *testing.T) {
	c := NewClassifier()

	t.Run("lower and digits at 12", func(t *testing.T) {
		a := c.Classify(Selection{Lower: true, Digits: true}, 12)
		assert.Equal(t, 36, a.PoolSize)
		assert.InDelta(t, 62.04, a.Entropy, 0.01)
		assert.Equal(t, RarityRare, a.Rarity.ID)
		assert.InDelta(t, 45.0, a.Rarity.Min, 0)
	})

	t.Run("nothing selected at 8", func(t *testing.T) {
		a := c.Classify(Selection{}, 8)
		assert.Equal(t, 26, a.PoolSize)
		assert.InDelta(t, 37.6, a.Entropy, 0.01)
		assert.Equal(t, RarityMagic, a.Rarity.ID)
	})

	t.Run("everything excluding ambiguous at 20", func(t *testing.T) {
		sel := Selection{Upper: true, Lower: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}
		a := c.Classify(sel, 20)
		assert.Equal(t, 84, a.PoolSize)
		assert.Greater(t, a.Entropy, 110.0)
		assert.Equal(t, RarityAncient, a.Rarity.ID)
	})
}

func TestCrossoverLength(t *testing.T) {
	sel := Selection{Upper: true, Lower: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}
	ancient, ok := RarityByID(RarityAncient)
	require.True(t, ok)

	n := CrossoverLength(sel, ancient)
	assert.Equal(t, 18, n)
	assert.Equal(t, RarityLegendary, RarityFor(Entropy(sel, n-1)).ID)
	assert.Equal(t, RarityAncient, RarityFor(Entropy(sel, n)).ID)

	lowest, ok := RarityByID(RarityCommon)
	require.True(t, ok)
	assert.Equal(t, 1, CrossoverLength(sel, lowest))

	magic, ok := RarityByID(RarityMagic)
	require.True(t, ok)
	assert.Equal(t, 6, CrossoverLength(Selection{Lower: true}, magic))
}

func TestClassifier_IsDeterministicExceptFlavor(t *testing.T) {
	sel := Selection{Upper: true, Digits: true}
	first := NewClassifier(WithPicker(firstPicker)).Classify(sel, 14)
	last := NewClassifier(WithPicker(lastPicker)).Classify(sel, 14)

	assert.InDelta(t, first.Entropy, last.Entropy, 0)
	assert.Equal(t, first.Rarity, last.Rarity)
	assert.Equal(t, first.Defense, last.Defense)
	assert.Equal(t, first.CrackTime.ID, last.CrackTime.ID)
	assert.NotEqual(t, first.DefenseLabel, last.DefenseLabel)
}

func TestEntropy_Monotonic(t *testing.T) {
	sels := []Selection{
		{},
		{Lower: true},
		{Lower: true, Digits: true},
		{Upper: true, Lower: true, Digits: true},
		AllClasses(),
	}

	for _, sel := range sels {
		prev := -1.0
		for length := 1; length <= 64; length++ {
			e := Entropy(sel, length)
			assert.GreaterOrEqual(t, e, prev, "%s at %d", sel, length)
			prev = e
		}
	}

	for length := 1; length <= 64; length++ {
		prev := -1.0
		for _, sel := range sels {
			e := Entropy(sel, length)
			assert.GreaterOrEqual(t, e, prev, "%s at %d", sel, length)
			prev = e
		}
	}
}

func TestRarityFor_StepBoundaries(t *testing.T) {
	for i, r := range Rarities() {
		assert.Equal(t, r.ID, RarityFor(r.Min).ID, "exact threshold %v", r.Min)
		if i > 0 {
			assert.Equal(t, Rarities()[i-1].ID, RarityFor(math.Nextafter(r.Min, 0)).ID, "just below %v", r.Min)
		}
	}

	assert.Equal(t, RarityCommon, RarityFor(-1).ID)
	assert.Equal(t, RarityCommon, RarityFor(math.NaN()).ID)
	assert.Equal(t, RarityAncient, RarityFor(math.Inf(1)).ID)
}

func TestCrackBucketFor_Boundaries(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, BucketInstant},
		{0.999, BucketInstant},
		{1, BucketSeconds},
		{59.999, BucketSeconds},
		{60, BucketMinutes},
		{3599.9, BucketMinutes},
		{3600, BucketHours},
		{86399.9, BucketHours},
		{86400, BucketDays},
		{31535999, BucketDays},
		{31536000, BucketYears},
		{999 * 31536000, BucketYears},
		{1000 * 31536000, BucketCenturies},
		{1e9*31536000 - 1e9, BucketCenturies},
		{1e9 * 31536000, BucketEternity},
		{math.Inf(1), BucketEternity},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CrackBucketFor(tt.seconds).ID, "seconds=%v", tt.seconds)
	}
}

func TestCrackBucket_FromEntropy(t *testing.T) {
	// seconds = 2^e / 1e10 / 2, so a bound b is reached at e = log2(b * 2e10).
	bounds := []struct {
		seconds float64
		below   string
		above   string
	}{
		{1, BucketInstant, BucketSeconds},
		{60, BucketSeconds, BucketMinutes},
		{3600, BucketMinutes, BucketHours},
		{86400, BucketHours, BucketDays},
		{31536000, BucketDays, BucketYears},
	}

	for _, b := range bounds {
		e := math.Log2(b.seconds * 2 * AttackRate)
		assert.Equal(t, b.below, CrackBucketFor(CrackSeconds(e-1e-6)).ID, "just under %v s", b.seconds)
		assert.Equal(t, b.above, CrackBucketFor(CrackSeconds(e+1e-6)).ID, "just over %v s", b.seconds)
	}

	assert.Equal(t, BucketEternity, CrackBucketFor(CrackSeconds(2000)).ID)
}

func TestDefense(t *testing.T) {
	assert.Equal(t, 93, DefenseValue(62.04))
	assert.Equal(t, 0, DefenseValue(0))
	assert.Equal(t, MaxDefense, DefenseValue(666))
	assert.Equal(t, MaxDefense, DefenseValue(5000))

	a := NewClassifier(WithPicker(firstPicker)).Classify(Selection{Lower: true, Digits: true}, 12)
	assert.Equal(t, "Sturdy +93", a.DefenseLabel)
	assert.Equal(t, "One-shot kill", NewClassifier(WithPicker(firstPicker)).Classify(Selection{}, 4).CrackTimeLabel)

	a = NewClassifier(WithPicker(lastPicker)).Classify(AllClasses(), 64)
	assert.Equal(t, "Guardian +620", a.DefenseLabel)
	assert.Equal(t, BucketEternity, a.CrackTime.ID)
	assert.Equal(t, "Time itself will perish", a.CrackTimeLabel)
}

func TestTablesAreOrdered(t *testing.T) {
	rs := Rarities()
	require.NotEmpty(t, rs)
	assert.InDelta(t, 0.0, rs[0].Min, 0)
	for i := 1; i < len(rs); i++ {
		assert.Less(t, rs[i-1].Min, rs[i].Min)
	}

	bs := CrackBuckets()
	for i := 1; i < len(bs); i++ {
		assert.Less(t, bs[i-1].Below, bs[i].Below)
	}
	for _, b := range bs {
		assert.NotEmpty(t, b.Flavors, b.ID)
	}
}
