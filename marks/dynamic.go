package marks

// Dynamic is a loudness mark. Value holds the dynamic token, or free text
// under the catch-all token.
type Dynamic struct {
	Style
	Value string
}

func (d *Dynamic) Kind() Kind { return KindDynamic }
