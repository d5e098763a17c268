package mxml_marks

import (
	"reflect"
	"regexp"
	"strconv"
)

// StyleAttributesYesNoToBool lists the style attributes whose external
// representation is a yes-no flag.
var StyleAttributesYesNoToBool = []string{"hideObjectOnPrint"}

var ncNamePat = regexp.MustCompile(`^[a-zA-Z_][\w.-]*$`)

// YesNoToBool converts a yes-no attribute value. Anything but the
// affirmative token is false.
func YesNoToBool(value string) bool {
	return value == "yes"
}

// BoolToYesNo converts any value to a yes-no attribute token. Truthiness
// counts, purposely not just boolean true: zero numbers, empty strings,
// empty collections and nil are "no", everything else is "yes".
func BoolToYesNo(value interface{}) string {
	if isTruthy(value) {
		return "yes"
	}
	return "no"
}

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array,
		reflect.Chan:
		return v.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !v.IsNil()
	default:
		return !v.IsZero()
	}
}

// FractionToPercent renders a 0-1 fraction as a whole percent string,
// truncating toward zero.
func FractionToPercent(value float64) string {
	return strconv.Itoa(int(value * 100))
}

// IsValidXSDID reports whether text is a valid xsd:ID, an XML non-colonized
// name: a letter or underscore first, then letters, digits, underscores,
// hyphens, or periods.
func IsValidXSDID(text string) bool {
	if text == "" {
		return false
	}
	return ncNamePat.MatchString(text)
}
