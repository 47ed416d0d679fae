package item

import (
	"fmt"
	"strings"
)

// Value is an attribute value. It is one of [String], [List] or [Map].
type Value interface {
	fmt.Stringer
	value()
}

// String is a plain attribute value.
type String string

// List is rendered as its elements joined by single spaces (e.g. class lists).
type List []string

// Map is a nested attribute mapping. Each entry renders as "{key: value}" on
// its own line, in insertion order.
type Map struct {
	Attrs
}

func (s String) String() string { return string(s) }
func (l List) String() string   { return strings.Join(l, " ") }
func (m Map) String() string {
	var sb strings.Builder
	m.Each(func(k string, v Value) {
		fmt.Fprintf(&sb, "\n{%s: %s}", k, v)
	})
	return sb.String()
}

func (String) value() {}
func (List) value()   {}
func (Map) value()    {}

type attr struct {
	key string
	val Value
}

// Attrs is an insertion-ordered attribute mapping with unique keys.
// The zero value is an empty mapping ready to use.
type Attrs struct {
	entries []attr
}

// NewAttrs builds Attrs from alternating key/value strings.
// It panics on an odd number of arguments.
func NewAttrs(kv ...string) Attrs {
	if len(kv)%2 != 0 {
		panic("item: NewAttrs called with odd number of arguments")
	}
	var a Attrs
	for i := 0; i < len(kv); i += 2 {
		a.Set(kv[i], String(kv[i+1]))
	}
	return a
}

// Set stores v under key. An existing key keeps its position.
func (a *Attrs) Set(key string, v Value) {
	for i := range a.entries {
		if a.entries[i].key == key {
			a.entries[i].val = v
			return
		}
	}
	a.entries = append(a.entries, attr{key: key, val: v})
}

// Get returns the value stored under key.
func (a *Attrs) Get(key string) (Value, bool) {
	for _, e := range a.entries {
		if e.key == key {
			return e.val, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of attributes.
func (a *Attrs) Len() int { return len(a.entries) }

// Each calls fn for every attribute in insertion order.
func (a *Attrs) Each(fn func(key string, v Value)) {
	for _, e := range a.entries {
		fn(e.key, e.val)
	}
}

// Decl is a single inline style declaration.
type Decl struct {
	Prop  string
	Value string
}

// Decls builds declarations from alternating property/value strings.
// It panics on an odd number of arguments.
func Decls(kv ...string) []Decl {
	if len(kv)%2 != 0 {
		panic("item: Decls called with odd number of arguments")
	}
	out := make([]Decl, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, Decl{Prop: kv[i], Value: kv[i+1]})
	}
	return out
}

// Item is one element of the card tree. A parent exclusively owns its
// children; an item must never appear under two parents.
type Item struct {
	Tag      string
	Attrs    Attrs
	Style    []Decl
	Void     bool
	Children []*Item
	Text     string
}

// Option configures an Item under construction.
type Option func(*Item)

// WithAttrs sets string attributes from alternating key/value pairs.
func WithAttrs(kv ...string) Option {
	return func(it *Item) {
		a := NewAttrs(kv...)
		a.Each(func(k string, v Value) { it.Attrs.Set(k, v) })
	}
}

// WithAttr sets a single attribute of any Value kind.
func WithAttr(key string, v Value) Option {
	return func(it *Item) { it.Attrs.Set(key, v) }
}

// WithStyle appends inline declarations from alternating property/value pairs.
func WithStyle(kv ...string) Option {
	return func(it *Item) { it.Style = append(it.Style, Decls(kv...)...) }
}

// SelfClosing marks the item as void: it serializes as <tag .../>.
func SelfClosing() Option {
	return func(it *Item) { it.Void = true }
}

// WithChildren appends children in order.
func WithChildren(children ...*Item) Option {
	return func(it *Item) { it.Children = append(it.Children, children...) }
}

// WithText sets the text content written before any children.
func WithText(text string) Option {
	return func(it *Item) { it.Text = text }
}

// New creates an item with the given tag. Absent fields default to empty.
func New(tag string, opts ...Option) *Item {
	it := &Item{Tag: tag}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Style creates a <style> item holding css as its text.
func Style(css string) *Item {
	return New("style", WithText(css))
}

// PushChild appends child to the item's children.
func (it *Item) PushChild(child *Item) {
	it.Children = append(it.Children, child)
}

// ID returns the item's id attribute, if it has one.
func (it *Item) ID() (string, bool) {
	v, ok := it.Attrs.Get("id")
	if !ok {
		return "", false
	}
	return v.String(), true
}
