// Package host provides handles to elements in the host UI tree.
//
// A widget never owns its element; the handle is borrowed from the
// surrounding tree and only read or annotated through attributes.
package host

// DatasetPrefix is the attribute prefix reserved for custom data attributes.
const DatasetPrefix = "data-"

// OptionsAttr names the custom data attribute carrying element-attached
// widget configuration, a URL-encoded or plain JSON object.
const OptionsAttr = "options"

// Element is a borrowed handle to a node in the host UI tree.
type Element interface {
	// Tag returns the element's tag name.
	Tag() string

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// SetAttr writes the named attribute.
	SetAttr(name, value string)

	// Valid reports whether the handle refers to an actual element.
	Valid() bool
}

// Valid reports whether el is a usable element handle.
// It tolerates nil handles and nil interface values.
func Valid(el Element) bool {
	return el != nil && el.Valid()
}

// Dataset returns the custom data attribute with the given name.
func Dataset(el Element, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	return el.Attr(DatasetPrefix + name)
}

// SetDataset writes the custom data attribute with the given name.
func SetDataset(el Element, name, value string) {
	if el == nil {
		return
	}
	el.SetAttr(DatasetPrefix+name, value)
}

// ID returns the element's id attribute, or "" when absent.
func ID(el Element) string {
	if el == nil {
		return ""
	}
	id, _ := el.Attr("id")
	return id
}
