package marks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type IsTest struct {
	Kind     Kind
	Ancestor Kind
	Expected bool
}

var IsTests = []IsTest{
	{KindStrongAccent, KindAccent, true},
	{KindStrongAccent, KindDynamicArticulation, true},
	{KindStrongAccent, KindArticulation, true},
	{KindAccent, KindStrongAccent, false},
	{KindStaccatissimo, KindStaccato, true},
	{KindStaccato, KindStaccatissimo, false},
	{KindSpiccato, KindStaccato, true},
	{KindSpiccato, KindAccent, true},
	{KindSpiccato, KindLengthArticulation, true},
	{KindSpiccato, KindDynamicArticulation, true},
	{KindStress, KindDynamicArticulation, true},
	{KindStress, KindLengthArticulation, true},
	{KindScoop, KindIndeterminateSlide, true},
	{KindScoop, KindPitchArticulation, true},
	{KindStringHarmonic, KindBowing, true},
	{KindStringHarmonic, KindHarmonic, true},
	{KindStringHarmonic, KindTechnicalIndication, true},
	{KindHarmonic, KindStringHarmonic, false},
	{KindSnapPizzicato, KindPizzicato, true},
	{KindSnapPizzicato, KindBowing, true},
	{KindFretTap, KindFretIndication, true},
	{KindOrganHeel, KindOrganIndication, true},
	{KindHarpFingerNails, KindHarpIndication, true},
	{KindUpBow, KindBowing, true},
	{KindUpBow, KindDownBow, false},
	{KindShake, KindTrill, true},
	{KindShake, KindOrnament, true},
	{KindShake, KindExpression, true},
	{KindInvertedTurn, KindTurn, true},
	{KindTurn, KindInvertedTurn, false},
	{KindInvertedMordent, KindMordent, true},
	{KindInvertedMordent, KindGeneralMordent, true},
	{KindMordent, KindInvertedMordent, false},
	{KindDynamic, KindDynamic, true},
	{KindDynamic, KindArticulation, false},
	{KindOrnament, KindArticulation, false},
	{KindInvalid, KindArticulation, false},
	{KindInvalid, KindInvalid, false},
}

func TestKind_Is(t *testing.T) {
	for testIdx := range IsTests {
		test := IsTests[testIdx]
		if test.Kind.Is(test.Ancestor) != test.Expected {
			t.Errorf("Is: %s.Is(%s) != %v", test.Kind, test.Ancestor,
				test.Expected)
		}
	}
}

type DepthTest struct {
	Kind     Kind
	Expected int
}

var DepthTests = []DepthTest{
	{KindArticulation, 0},
	{KindExpression, 0},
	{KindDynamic, 0},
	{KindLengthArticulation, 1},
	{KindCaesura, 1},
	{KindAccent, 2},
	{KindStrongAccent, 3},
	{KindStaccato, 2},
	{KindStaccatissimo, 3},
	{KindSpiccato, 3},
	{KindStress, 2},
	{KindScoop, 3},
	{KindTechnicalIndication, 1},
	{KindBowing, 2},
	{KindUpBow, 3},
	{KindStringHarmonic, 3},
	{KindPizzicato, 3},
	{KindSnapPizzicato, 4},
	{KindFretTap, 3},
	{KindOrganHeel, 3},
	{KindOrnament, 1},
	{KindTrill, 2},
	{KindShake, 3},
	{KindInvertedTurn, 3},
	{KindMordent, 3},
	{KindInvertedMordent, 4},
	{KindInvalid, -1},
}

func TestKind_Depth(t *testing.T) {
	for testIdx := range DepthTests {
		test := DepthTests[testIdx]
		assert.Equal(t, test.Expected, test.Kind.Depth(),
			"depth of %s", test.Kind)
	}
}

func TestKindByName(t *testing.T) {
	for _, kind := range Kinds() {
		resolved, ok := KindByName(kind.String())
		assert.True(t, ok, "name %s should resolve", kind.String())
		assert.Equal(t, kind, resolved)
	}
	_, ok := KindByName("NoSuchMark")
	assert.False(t, ok)
	_, ok = KindByName("Invalid")
	assert.False(t, ok)
}

func TestKind_Parents(t *testing.T) {
	assert.Equal(t, []Kind{KindStaccato, KindAccent},
		KindSpiccato.Parents())
	assert.Equal(t, []Kind{KindDynamicArticulation, KindLengthArticulation},
		KindStress.Parents())
	assert.Equal(t, []Kind{KindBowing, KindHarmonic},
		KindStringHarmonic.Parents())
	assert.Empty(t, KindArticulation.Parents())
	assert.Empty(t, KindInvalid.Parents())
}

func TestNew(t *testing.T) {
	for _, kind := range Kinds() {
		mark, ok := New(kind)
		if !ok {
			t.Errorf("New: no constructor for %s", kind)
			continue
		}
		assert.Equal(t, kind, mark.Kind(), "constructed kind for %s", kind)
	}
	_, ok := New(KindInvalid)
	assert.False(t, ok)
	_, ok = New(kindCount)
	assert.False(t, ok)
}

func TestStyleRef(t *testing.T) {
	for _, kind := range Kinds() {
		mark, _ := New(kind)
		styled, ok := mark.(Styled)
		if !ok {
			t.Errorf("StyleRef: %s does not carry a style", kind)
			continue
		}
		styled.StyleRef().Placement = "above"
	}

	accent := &StrongAccent{}
	accent.Placement = "below"
	accent.Color = "#ff0000"
	assert.Equal(t, "below", accent.StyleRef().Placement)
	assert.Equal(t, "#ff0000", accent.StyleRef().Color)
}

func TestMarkValues(t *testing.T) {
	fingering := &Fingering{Number: "5", Substitution: true}
	assert.Equal(t, KindFingering, fingering.Kind())
	assert.Equal(t, "5", fingering.Number)

	turn := &InvertedTurn{}
	turn.Delayed = true
	assert.Equal(t, KindInvertedTurn, turn.Kind())
	assert.True(t, turn.Delayed)

	breath := &BreathMark{Symbol: "comma"}
	assert.Equal(t, KindBreathMark, breath.Kind())

	dynamic := &Dynamic{Value: "sfz"}
	assert.Equal(t, KindDynamic, dynamic.Kind())
	assert.Equal(t, "sfz", dynamic.Value)
}
