package marks

// Kind identifies a node in the notation mark hierarchy. The hierarchy is a
// directed acyclic graph: most kinds declare a single parent, a few descend
// from two at once (Spiccato, Stress, StringHarmonic).
type Kind uint16

const (
	KindInvalid Kind = iota

	// Articulation family.
	KindArticulation
	KindLengthArticulation
	KindDynamicArticulation
	KindPitchArticulation
	KindAccent
	KindStrongAccent
	KindStaccato
	KindStaccatissimo
	KindSpiccato
	KindTenuto
	KindDetachedLegato
	KindIndeterminateSlide
	KindScoop
	KindPlop
	KindDoit
	KindFalloff
	KindBreathMark
	KindCaesura
	KindStress
	KindUnstress

	// Technical family, playing-technique indications.
	KindTechnicalIndication
	KindHarmonic
	KindBowing
	KindUpBow
	KindDownBow
	KindStringHarmonic
	KindOpenString
	KindStringIndication
	KindStringThumbPosition
	KindPizzicato
	KindSnapPizzicato
	KindFingering
	KindFrettedPluck
	KindDoubleTongue
	KindTripleTongue
	KindStopped
	KindFretIndication
	KindFretTap
	KindOrganIndication
	KindOrganHeel
	KindOrganToe
	KindHarpIndication
	KindHarpFingerNails
	KindHandbellIndication

	// Expression family.
	KindExpression
	KindOrnament
	KindTrill
	KindShake
	KindTurn
	KindInvertedTurn
	KindGeneralMordent
	KindMordent
	KindInvertedMordent
	KindSchleifer

	// Dynamics.
	KindDynamic

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:             "Invalid",
	KindArticulation:        "Articulation",
	KindLengthArticulation:  "LengthArticulation",
	KindDynamicArticulation: "DynamicArticulation",
	KindPitchArticulation:   "PitchArticulation",
	KindAccent:              "Accent",
	KindStrongAccent:        "StrongAccent",
	KindStaccato:            "Staccato",
	KindStaccatissimo:       "Staccatissimo",
	KindSpiccato:            "Spiccato",
	KindTenuto:              "Tenuto",
	KindDetachedLegato:      "DetachedLegato",
	KindIndeterminateSlide:  "IndeterminateSlide",
	KindScoop:               "Scoop",
	KindPlop:                "Plop",
	KindDoit:                "Doit",
	KindFalloff:             "Falloff",
	KindBreathMark:          "BreathMark",
	KindCaesura:             "Caesura",
	KindStress:              "Stress",
	KindUnstress:            "Unstress",
	KindTechnicalIndication: "TechnicalIndication",
	KindHarmonic:            "Harmonic",
	KindBowing:              "Bowing",
	KindUpBow:               "UpBow",
	KindDownBow:             "DownBow",
	KindStringHarmonic:      "StringHarmonic",
	KindOpenString:          "OpenString",
	KindStringIndication:    "StringIndication",
	KindStringThumbPosition: "StringThumbPosition",
	KindPizzicato:           "Pizzicato",
	KindSnapPizzicato:       "SnapPizzicato",
	KindFingering:           "Fingering",
	KindFrettedPluck:        "FrettedPluck",
	KindDoubleTongue:        "DoubleTongue",
	KindTripleTongue:        "TripleTongue",
	KindStopped:             "Stopped",
	KindFretIndication:      "FretIndication",
	KindFretTap:             "FretTap",
	KindOrganIndication:     "OrganIndication",
	KindOrganHeel:           "OrganHeel",
	KindOrganToe:            "OrganToe",
	KindHarpIndication:      "HarpIndication",
	KindHarpFingerNails:     "HarpFingerNails",
	KindHandbellIndication:  "HandbellIndication",
	KindExpression:          "Expression",
	KindOrnament:            "Ornament",
	KindTrill:               "Trill",
	KindShake:               "Shake",
	KindTurn:                "Turn",
	KindInvertedTurn:        "InvertedTurn",
	KindGeneralMordent:      "GeneralMordent",
	KindMordent:             "Mordent",
	KindInvertedMordent:     "InvertedMordent",
	KindSchleifer:           "Schleifer",
	KindDynamic:             "Dynamic",
}

// kindParents declares the immediate parents of every kind. Articulation,
// Expression, and Dynamic are family roots with no entry.
var kindParents = [kindCount][]Kind{
	KindLengthArticulation:  {KindArticulation},
	KindDynamicArticulation: {KindArticulation},
	KindPitchArticulation:   {KindArticulation},
	KindAccent:              {KindDynamicArticulation},
	KindStrongAccent:        {KindAccent},
	KindStaccato:            {KindLengthArticulation},
	KindStaccatissimo:       {KindStaccato},
	KindSpiccato:            {KindStaccato, KindAccent},
	KindTenuto:              {KindLengthArticulation},
	KindDetachedLegato:      {KindLengthArticulation},
	KindIndeterminateSlide:  {KindPitchArticulation},
	KindScoop:               {KindIndeterminateSlide},
	KindPlop:                {KindIndeterminateSlide},
	KindDoit:                {KindIndeterminateSlide},
	KindFalloff:             {KindIndeterminateSlide},
	KindBreathMark:          {KindLengthArticulation},
	KindCaesura:             {KindArticulation},
	KindStress:              {KindDynamicArticulation, KindLengthArticulation},
	KindUnstress:            {KindDynamicArticulation},
	KindTechnicalIndication: {KindArticulation},
	KindHarmonic:            {KindTechnicalIndication},
	KindBowing:              {KindTechnicalIndication},
	KindUpBow:               {KindBowing},
	KindDownBow:             {KindBowing},
	KindStringHarmonic:      {KindBowing, KindHarmonic},
	KindOpenString:          {KindBowing},
	KindStringIndication:    {KindBowing},
	KindStringThumbPosition: {KindBowing},
	KindPizzicato:           {KindBowing},
	KindSnapPizzicato:       {KindPizzicato},
	KindFingering:           {KindTechnicalIndication},
	KindFrettedPluck:        {KindTechnicalIndication},
	KindDoubleTongue:        {KindTechnicalIndication},
	KindTripleTongue:        {KindTechnicalIndication},
	KindStopped:             {KindTechnicalIndication},
	KindFretIndication:      {KindTechnicalIndication},
	KindFretTap:             {KindFretIndication},
	KindOrganIndication:     {KindTechnicalIndication},
	KindOrganHeel:           {KindOrganIndication},
	KindOrganToe:            {KindOrganIndication},
	KindHarpIndication:      {KindTechnicalIndication},
	KindHarpFingerNails:     {KindHarpIndication},
	KindHandbellIndication:  {KindTechnicalIndication},
	KindOrnament:            {KindExpression},
	KindTrill:               {KindOrnament},
	KindShake:               {KindTrill},
	KindTurn:                {KindOrnament},
	KindInvertedTurn:        {KindTurn},
	KindGeneralMordent:      {KindOrnament},
	KindMordent:             {KindGeneralMordent},
	KindInvertedMordent:     {KindMordent},
	KindSchleifer:           {KindOrnament},
}

var kindDepth [kindCount]int
var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, kindCount)
	for k := KindArticulation; k < kindCount; k++ {
		kindByName[kindNames[k]] = k
		kindDepth[k] = depthOf(k)
	}
}

func depthOf(kind Kind) int {
	depth := 0
	for _, parent := range kindParents[kind] {
		if d := depthOf(parent) + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Valid reports whether k names a kind in the hierarchy.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// Is reports whether k is ancestor itself or descends from it through any
// parent chain.
func (k Kind) Is(ancestor Kind) bool {
	if !k.Valid() {
		return false
	}
	if k == ancestor {
		return true
	}
	for _, parent := range kindParents[k] {
		if parent.Is(ancestor) {
			return true
		}
	}
	return false
}

// Depth is the length of the longest parent chain from k down to the root of
// its family. Roots have depth 0, invalid kinds -1.
func (k Kind) Depth() int {
	if !k.Valid() {
		return -1
	}
	return kindDepth[k]
}

// Parents returns the immediate parents of k, in declaration order.
func (k Kind) Parents() []Kind {
	if !k.Valid() {
		return nil
	}
	parents := make([]Kind, len(kindParents[k]))
	copy(parents, kindParents[k])
	return parents
}

// KindByName resolves the exported name of a kind, as spelled in vocabulary
// resource files.
func KindByName(name string) (Kind, bool) {
	kind, ok := kindByName[name]
	return kind, ok
}

// Kinds returns every kind in the hierarchy in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindArticulation; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Mark is implemented by every notation mark object.
type Mark interface {
	Kind() Kind
}
