package marks

// Articulation is the root of the articulation family. Concrete marks embed
// their primary parent; kinds with two parents declare the second one in the
// kind graph only.
type Articulation struct {
	Style
}

func (a *Articulation) Kind() Kind { return KindArticulation }

// LengthArticulation covers marks that alter the sounding duration of a note.
type LengthArticulation struct {
	Articulation
}

func (a *LengthArticulation) Kind() Kind { return KindLengthArticulation }

// DynamicArticulation covers marks that alter the loudness of a note.
type DynamicArticulation struct {
	Articulation
}

func (a *DynamicArticulation) Kind() Kind { return KindDynamicArticulation }

// PitchArticulation covers marks that bend or slide the pitch of a note.
type PitchArticulation struct {
	Articulation
}

func (a *PitchArticulation) Kind() Kind { return KindPitchArticulation }

type Accent struct {
	DynamicArticulation
}

func (a *Accent) Kind() Kind { return KindAccent }

type StrongAccent struct {
	Accent
}

func (a *StrongAccent) Kind() Kind { return KindStrongAccent }

type Staccato struct {
	LengthArticulation
}

func (s *Staccato) Kind() Kind { return KindStaccato }

type Staccatissimo struct {
	Staccato
}

func (s *Staccatissimo) Kind() Kind { return KindStaccatissimo }

// Spiccato is both a Staccato and an Accent in the kind graph.
type Spiccato struct {
	Staccato
}

func (s *Spiccato) Kind() Kind { return KindSpiccato }

type Tenuto struct {
	LengthArticulation
}

func (t *Tenuto) Kind() Kind { return KindTenuto }

type DetachedLegato struct {
	LengthArticulation
}

func (d *DetachedLegato) Kind() Kind { return KindDetachedLegato }

// IndeterminateSlide covers slides of no fixed interval into or out of a
// note.
type IndeterminateSlide struct {
	PitchArticulation
}

func (i *IndeterminateSlide) Kind() Kind { return KindIndeterminateSlide }

type Scoop struct {
	IndeterminateSlide
}

func (s *Scoop) Kind() Kind { return KindScoop }

type Plop struct {
	IndeterminateSlide
}

func (p *Plop) Kind() Kind { return KindPlop }

type Doit struct {
	IndeterminateSlide
}

func (d *Doit) Kind() Kind { return KindDoit }

type Falloff struct {
	IndeterminateSlide
}

func (f *Falloff) Kind() Kind { return KindFalloff }

// BreathMark carries the optional glyph drawn for the breath, such as
// "comma" or "tick".
type BreathMark struct {
	LengthArticulation
	Symbol string
}

func (b *BreathMark) Kind() Kind { return KindBreathMark }

type Caesura struct {
	Articulation
}

func (c *Caesura) Kind() Kind { return KindCaesura }

// Stress is both a DynamicArticulation and a LengthArticulation in the kind
// graph.
type Stress struct {
	DynamicArticulation
}

func (s *Stress) Kind() Kind { return KindStress }

type Unstress struct {
	DynamicArticulation
}

func (u *Unstress) Kind() Kind { return KindUnstress }
