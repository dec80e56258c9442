package errors

import "fmt"

// The diagnostic message catalog (§6). Templates are exact strings:
// validator tests check equality, so these must not be reworded.

// Text reports a text mismatch: an expected text node was something else.
func Text(found string) string {
	return fmt.Sprintf("Expected text but found %s", found)
}

// NoText reports unexpected text where no text was permitted.
func NoText() string {
	return "Unexpected text in element"
}

// Elem reports an element name mismatch.
func Elem(name, found string) string {
	return fmt.Sprintf("Expected element %s but found %s", name, found)
}

// Attr reports a missing required attribute.
func Attr(name string) string {
	return fmt.Sprintf("Expected attribute: %s", name)
}

// AttrText reports an attribute value that was expected to be text-shaped.
func AttrText(name, found string) string {
	return fmt.Sprintf("Expected attribute value for %s to be text but was %s", name, found)
}

// NoChildren reports unexpected content where none was permitted.
func NoChildren(n int) string {
	return fmt.Sprintf("Expected no contents but found %d children", n)
}

// UnexpectedElem reports an element that matched no alternative.
func UnexpectedElem(name string) string {
	return fmt.Sprintf("Unexpected element: %s", name)
}

// UnexpectedAttr reports an attribute present but not declared.
func UnexpectedAttr(name string) string {
	return fmt.Sprintf("Unexpected attribute: %s", name)
}

// NoMatch reports that no choice alternative matched.
func NoMatch() string {
	return "Could not find matching choice"
}
