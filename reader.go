package rope

import "io"

// Reader returns a reader for the bytes of a rope.
//
// The reader reads from the current content of r. Modifying r while reading
// shifts the content under the reader's cursor.
func (r *Rope) Reader() io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   *Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := len(p)
	if rr.cursor+l > rr.rope.Len() {
		l = rr.rope.Len() - rr.cursor
		if l <= 0 {
			return 0, io.EOF
		}
	}
	s, err := rr.rope.Report(rr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	rr.cursor += n
	return n, nil
}
