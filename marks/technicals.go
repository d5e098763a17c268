package marks

// TechnicalIndication is the root of the playing-technique marks, itself an
// articulation.
type TechnicalIndication struct {
	Articulation
}

func (t *TechnicalIndication) Kind() Kind { return KindTechnicalIndication }

// Harmonic is any harmonic indication regardless of instrument.
type Harmonic struct {
	TechnicalIndication
}

func (h *Harmonic) Kind() Kind { return KindHarmonic }

// Bowing is the root of the bowed-string techniques.
type Bowing struct {
	TechnicalIndication
}

func (b *Bowing) Kind() Kind { return KindBowing }

type UpBow struct {
	Bowing
}

func (u *UpBow) Kind() Kind { return KindUpBow }

type DownBow struct {
	Bowing
}

func (d *DownBow) Kind() Kind { return KindDownBow }

// StringHarmonic is both a Bowing and a Harmonic in the kind graph.
type StringHarmonic struct {
	Bowing
}

func (s *StringHarmonic) Kind() Kind { return KindStringHarmonic }

type OpenString struct {
	Bowing
}

func (o *OpenString) Kind() Kind { return KindOpenString }

// StringIndication names which string to play, 1 being the highest.
type StringIndication struct {
	Bowing
	Number int
}

func (s *StringIndication) Kind() Kind { return KindStringIndication }

type StringThumbPosition struct {
	Bowing
}

func (s *StringThumbPosition) Kind() Kind { return KindStringThumbPosition }

type Pizzicato struct {
	Bowing
}

func (p *Pizzicato) Kind() Kind { return KindPizzicato }

type SnapPizzicato struct {
	Pizzicato
}

func (s *SnapPizzicato) Kind() Kind { return KindSnapPizzicato }

// Fingering carries the finger number as text plus the substitution and
// alternate flags of the external attribute set.
type Fingering struct {
	TechnicalIndication
	Number       string
	Substitution bool
	Alternate    bool
}

func (f *Fingering) Kind() Kind { return KindFingering }

// FrettedPluck names the plucking finger on fretted instruments, usually a
// p-i-m-a letter.
type FrettedPluck struct {
	TechnicalIndication
	Finger string
}

func (f *FrettedPluck) Kind() Kind { return KindFrettedPluck }

type DoubleTongue struct {
	TechnicalIndication
}

func (d *DoubleTongue) Kind() Kind { return KindDoubleTongue }

type TripleTongue struct {
	TechnicalIndication
}

func (t *TripleTongue) Kind() Kind { return KindTripleTongue }

type Stopped struct {
	TechnicalIndication
}

func (s *Stopped) Kind() Kind { return KindStopped }

// FretIndication names which fret to play.
type FretIndication struct {
	TechnicalIndication
	Number int
}

func (f *FretIndication) Kind() Kind { return KindFretIndication }

type FretTap struct {
	FretIndication
}

func (f *FretTap) Kind() Kind { return KindFretTap }

// OrganIndication is the root of the organ pedal techniques.
type OrganIndication struct {
	TechnicalIndication
}

func (o *OrganIndication) Kind() Kind { return KindOrganIndication }

type OrganHeel struct {
	OrganIndication
}

func (o *OrganHeel) Kind() Kind { return KindOrganHeel }

type OrganToe struct {
	OrganIndication
}

func (o *OrganToe) Kind() Kind { return KindOrganToe }

type HarpIndication struct {
	TechnicalIndication
}

func (h *HarpIndication) Kind() Kind { return KindHarpIndication }

type HarpFingerNails struct {
	HarpIndication
}

func (h *HarpFingerNails) Kind() Kind { return KindHarpFingerNails }

// HandbellIndication carries the handbell technique name as element text,
// such as "damp" or "echo".
type HandbellIndication struct {
	TechnicalIndication
	Value string
}

func (h *HandbellIndication) Kind() Kind { return KindHandbellIndication }
