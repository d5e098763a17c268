package marks

// Style carries the display attributes shared by every mark element:
// placement relative to the staff, color, and whether the object is
// suppressed when printing.
type Style struct {
	Placement         string
	Color             string
	HideObjectOnPrint bool
}

// StyleRef exposes the style of any mark embedding Style.
func (s *Style) StyleRef() *Style {
	return s
}

// Styled is satisfied by marks that carry shared display attributes.
type Styled interface {
	StyleRef() *Style
}
