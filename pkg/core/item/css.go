package item

import "strings"

// MinifyCSS collapses whitespace runs to a single space and removes spaces
// next to '{', '}', ':', ';' and ','. It does not understand strings or
// comments, so it must only be applied to CSS written in this module.
func MinifyCSS(css string) string {
	fields := strings.Fields(css)
	joined := strings.Join(fields, " ")

	var sb strings.Builder
	sb.Grow(len(joined))
	for i := 0; i < len(joined); i++ {
		c := joined[i]
		if c == ' ' {
			prev := sb.Len() > 0 && isPunct(lastByte(&sb))
			next := i+1 < len(joined) && isPunct(joined[i+1])
			if prev || next {
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isPunct(c byte) bool {
	switch c {
	case '{', '}', ':', ';', ',':
		return true
	}
	return false
}

func lastByte(sb *strings.Builder) byte {
	s := sb.String()
	return s[len(s)-1]
}
