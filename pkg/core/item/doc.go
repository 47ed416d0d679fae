// Package item provides the element tree and the serializer used to assemble
// stat-card SVG documents.
//
// # Overview
//
// A card is built as a tree of [Item] values. Each item carries a tag name,
// insertion-ordered attributes ([Attrs]), an ordered list of inline style
// declarations ([Decl]), an optional void flag, children and text. Items are
// plain data: the only mutation after construction is [Item.PushChild].
//
// Inline styles are not written as style="" attributes. Instead a [Builder]
// turns them into id-scoped CSS rules, which lets extensions (themes,
// animations, fonts) override any element simply by appending later rules for
// the same id.
//
// # Two Passes, One Counter
//
// [Builder.CSS] and [Builder.Stringify] share a single id counter. Whichever
// pass visits an item first assigns it an id of the form "_N" if it has none;
// the other pass reuses it. This guarantees that every "#id" selector in the
// stylesheet matches an id="" attribute in the markup:
//
//	b := item.NewBuilder()
//	css := b.CSS(root)               // claims ids, emits "#id{...}" rules
//	root.PushChild(item.Style(css))  // the style node gets its id later
//	svg := b.Stringify(root)         // reuses every id claimed above
//
// Both passes must run against the same tree with the same Builder. Running
// CSS twice duplicates rules; using two Builders produces colliding ids.
//
// # Well-formedness
//
// No validation of tag names or attribute values is performed, and nothing is
// escaped. Callers are responsible for well-formed input. A void item with
// children is a programming error; the serializer drops its children.
package item
