// Package theme holds the page's dark/light mode switch.
//
// A Controller owns a single boolean flag for the lifetime of one page
// session and mirrors it onto the root element's class list as the "dark"
// marker. Styles key off that marker; nothing is persisted.
package theme

import "strings"

// Marker is the class present on the root element while dark mode is on.
const Marker = "dark"

// ClassList is an ordered set of class names, the Go stand-in for an
// element's class attribute.
type ClassList struct {
	names []string
}

// NewClassList returns a class list holding the given names, deduplicated.
func NewClassList(names ...string) *ClassList {
	c := &ClassList{}
	for _, n := range names {
		c.Add(n)
	}
	return c
}

// Add appends name unless it is already present or blank.
func (c *ClassList) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" || c.Has(name) {
		return
	}
	c.names = append(c.names, name)
}

// Remove drops name if present.
func (c *ClassList) Remove(name string) {
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			return
		}
	}
}

func (c *ClassList) Has(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the class names in insertion order.
func (c *ClassList) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *ClassList) String() string {
	return strings.Join(c.names, " ")
}

// Controller is the theme switch for one page session. It is owned by the
// root view and is not safe for use by more than one goroutine.
type Controller struct {
	dark bool
	root *ClassList
}

// New returns a controller in light mode. root is the class list of the
// document root; a nil root gets a fresh empty list.
func New(root *ClassList) *Controller {
	if root == nil {
		root = NewClassList()
	}
	c := &Controller{root: root}
	c.sync()
	return c
}

// Toggle flips between light and dark and updates the root marker.
func (c *Controller) Toggle() {
	c.dark = !c.dark
	c.sync()
}

// Dark reports whether dark mode is on.
func (c *Controller) Dark() bool { return c.dark }

// Root returns the root element's class list.
func (c *Controller) Root() *ClassList { return c.root }

// RootClass renders the root class attribute.
func (c *Controller) RootClass() string { return c.root.String() }

// Label names the icon shown on the toggle button: the sun switches back to
// light while dark mode is on, the moon switches to dark otherwise.
func (c *Controller) Label() string {
	if c.dark {
		return "sun"
	}
	return "moon"
}

// Palette returns the palette for the current mode.
func (c *Controller) Palette() Palette {
	if c.dark {
		return Dark
	}
	return Light
}

func (c *Controller) sync() {
	if c.dark {
		c.root.Add(Marker)
	} else {
		c.root.Remove(Marker)
	}
}
