package item

import (
	"strconv"
	"strings"
)

// Builder assigns ids and renders an item tree to markup and CSS.
// A Builder is not safe for concurrent use; create one per render.
type Builder struct {
	counter int
}

// NewBuilder returns a Builder whose first synthesized id is "_1".
func NewBuilder() *Builder {
	return &Builder{counter: 1}
}

// ensureID returns the item's id, assigning the next "_N" id if it has none.
func (b *Builder) ensureID(it *Item) string {
	if id, ok := it.ID(); ok {
		return id
	}
	id := "_" + strconv.Itoa(b.counter)
	b.counter++
	it.Attrs.Set("id", String(id))
	return id
}

// CSS renders one "#id{prop:value;...}" rule per item with inline style, in
// pre-order, so a parent's rule always precedes its children's rules.
// Items without style emit nothing but their children are still visited.
func (b *Builder) CSS(it *Item) string {
	var sb strings.Builder
	b.writeCSS(&sb, it)
	return sb.String()
}

func (b *Builder) writeCSS(sb *strings.Builder, it *Item) {
	id := b.ensureID(it)
	if len(it.Style) > 0 {
		sb.WriteByte('#')
		sb.WriteString(id)
		sb.WriteByte('{')
		for i, d := range it.Style {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(d.Prop)
			sb.WriteByte(':')
			sb.WriteString(d.Value)
		}
		sb.WriteByte('}')
	}
	for _, child := range it.Children {
		b.writeCSS(sb, child)
	}
}

// Stringify renders the item tree as markup. Attributes are written in
// insertion order; children are separated by single spaces and follow the
// item's text.
func (b *Builder) Stringify(it *Item) string {
	var sb strings.Builder
	b.writeMarkup(&sb, it)
	return sb.String()
}

func (b *Builder) writeMarkup(sb *strings.Builder, it *Item) {
	b.ensureID(it)

	sb.WriteByte('<')
	sb.WriteString(it.Tag)
	it.Attrs.Each(func(k string, v Value) {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(v.String())
		sb.WriteByte('"')
	})

	if it.Void {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	sb.WriteString(it.Text)
	for i, child := range it.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		b.writeMarkup(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(it.Tag)
	sb.WriteByte('>')
}
