package join

import (
	"io"

	"github.com/indigo-web/utils/uf"
)

// WriteTo streams the joined elements into the writer fragment by fragment,
// never materializing the whole result. The source is traversed exactly
// once. On the first write error the traversal stops and the error is
// returned as-is; whatever was already written stays on the sink.
// Implements io.WriterTo.
//
// Fragments are passed via uf.S2B, so the writer must not retain the slices
// it is given.
func (j Joiner[T]) WriteTo(w io.Writer) (n int64, err error) {
	first := true

	for elem := range j.src {
		if !first {
			wrote, werr := w.Write(uf.S2B(j.sep))
			n += int64(wrote)
			if werr != nil {
				return n, werr
			}
		}

		first = false
		wrote, werr := w.Write(uf.S2B(j.render(elem)))
		n += int64(wrote)
		if werr != nil {
			return n, werr
		}
	}

	return n, nil
}

// WriteText is WriteTo for destinations that accept text directly, sparing
// the string-to-bytes hop. Same contract otherwise: one traversal, strict
// source order, stop at the first error.
func (j Joiner[T]) WriteText(w io.StringWriter) (n int64, err error) {
	first := true

	for elem := range j.src {
		if !first {
			wrote, werr := w.WriteString(j.sep)
			n += int64(wrote)
			if werr != nil {
				return n, werr
			}
		}

		first = false
		wrote, werr := w.WriteString(j.render(elem))
		n += int64(wrote)
		if werr != nil {
			return n, werr
		}
	}

	return n, nil
}
