package marks

// New constructs the zero mark object for a kind. The boolean is false for
// kinds outside the hierarchy.
func New(kind Kind) (Mark, bool) {
	switch kind {
	case KindArticulation:
		return &Articulation{}, true
	case KindLengthArticulation:
		return &LengthArticulation{}, true
	case KindDynamicArticulation:
		return &DynamicArticulation{}, true
	case KindPitchArticulation:
		return &PitchArticulation{}, true
	case KindAccent:
		return &Accent{}, true
	case KindStrongAccent:
		return &StrongAccent{}, true
	case KindStaccato:
		return &Staccato{}, true
	case KindStaccatissimo:
		return &Staccatissimo{}, true
	case KindSpiccato:
		return &Spiccato{}, true
	case KindTenuto:
		return &Tenuto{}, true
	case KindDetachedLegato:
		return &DetachedLegato{}, true
	case KindIndeterminateSlide:
		return &IndeterminateSlide{}, true
	case KindScoop:
		return &Scoop{}, true
	case KindPlop:
		return &Plop{}, true
	case KindDoit:
		return &Doit{}, true
	case KindFalloff:
		return &Falloff{}, true
	case KindBreathMark:
		return &BreathMark{}, true
	case KindCaesura:
		return &Caesura{}, true
	case KindStress:
		return &Stress{}, true
	case KindUnstress:
		return &Unstress{}, true
	case KindTechnicalIndication:
		return &TechnicalIndication{}, true
	case KindHarmonic:
		return &Harmonic{}, true
	case KindBowing:
		return &Bowing{}, true
	case KindUpBow:
		return &UpBow{}, true
	case KindDownBow:
		return &DownBow{}, true
	case KindStringHarmonic:
		return &StringHarmonic{}, true
	case KindOpenString:
		return &OpenString{}, true
	case KindStringIndication:
		return &StringIndication{}, true
	case KindStringThumbPosition:
		return &StringThumbPosition{}, true
	case KindPizzicato:
		return &Pizzicato{}, true
	case KindSnapPizzicato:
		return &SnapPizzicato{}, true
	case KindFingering:
		return &Fingering{}, true
	case KindFrettedPluck:
		return &FrettedPluck{}, true
	case KindDoubleTongue:
		return &DoubleTongue{}, true
	case KindTripleTongue:
		return &TripleTongue{}, true
	case KindStopped:
		return &Stopped{}, true
	case KindFretIndication:
		return &FretIndication{}, true
	case KindFretTap:
		return &FretTap{}, true
	case KindOrganIndication:
		return &OrganIndication{}, true
	case KindOrganHeel:
		return &OrganHeel{}, true
	case KindOrganToe:
		return &OrganToe{}, true
	case KindHarpIndication:
		return &HarpIndication{}, true
	case KindHarpFingerNails:
		return &HarpFingerNails{}, true
	case KindHandbellIndication:
		return &HandbellIndication{}, true
	case KindExpression:
		return &Expression{}, true
	case KindOrnament:
		return &Ornament{}, true
	case KindTrill:
		return &Trill{}, true
	case KindShake:
		return &Shake{}, true
	case KindTurn:
		return &Turn{}, true
	case KindInvertedTurn:
		return &InvertedTurn{}, true
	case KindGeneralMordent:
		return &GeneralMordent{}, true
	case KindMordent:
		return &Mordent{}, true
	case KindInvertedMordent:
		return &InvertedMordent{}, true
	case KindSchleifer:
		return &Schleifer{}, true
	case KindDynamic:
		return &Dynamic{}, true
	}
	return nil, false
}
