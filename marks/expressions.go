package marks

// Expression is the root of the expression family.
type Expression struct {
	Style
}

func (e *Expression) Kind() Kind { return KindExpression }

// Ornament covers single-note ornaments. Spanning ornaments are handled
// upstream and never appear here.
type Ornament struct {
	Expression
}

func (o *Ornament) Kind() Kind { return KindOrnament }

type Trill struct {
	Ornament
}

func (t *Trill) Kind() Kind { return KindTrill }

type Shake struct {
	Trill
}

func (s *Shake) Kind() Kind { return KindShake }

// Turn marks a turn; Delayed states that it sounds after the main note
// rather than on it.
type Turn struct {
	Ornament
	Delayed bool
}

func (t *Turn) Kind() Kind { return KindTurn }

type InvertedTurn struct {
	Turn
}

func (i *InvertedTurn) Kind() Kind { return KindInvertedTurn }

// GeneralMordent is a mordent of unspecified direction.
type GeneralMordent struct {
	Ornament
}

func (g *GeneralMordent) Kind() Kind { return KindGeneralMordent }

type Mordent struct {
	GeneralMordent
}

func (m *Mordent) Kind() Kind { return KindMordent }

type InvertedMordent struct {
	Mordent
}

func (i *InvertedMordent) Kind() Kind { return KindInvertedMordent }

type Schleifer struct {
	Ornament
}

func (s *Schleifer) Kind() Kind { return KindSchleifer }
