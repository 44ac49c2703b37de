package render

import "strings"

// markup is text that is safe to place inside the document. Values of this
// type are only produced by escape or by executing a fragment template.
type markup string

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escape replaces &, < and > with their entities.
func escape(s string) markup {
	return markup(markupEscaper.Replace(s))
}
