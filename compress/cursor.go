package compress

// boundedWriter is an io.Writer cursor over a caller-owned,
// fixed-capacity destination slice.
//
// Writes land in dst while capacity remains; once dst is full the
// excess is counted but discarded. Write never returns an error, so a
// wrapped stream writer can always finish its stream and the exact
// size the stream produced is known afterward, even on overflow. That
// total becomes the "needed" hint of the capacity failure without a
// staging buffer or a second pass.
type boundedWriter struct {
	dst   []byte
	n     int // bytes written into dst
	total int // bytes the stream produced
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	w.total += len(p)
	if w.n < len(w.dst) {
		w.n += copy(w.dst[w.n:], p)
	}

	return len(p), nil
}

// result converts the cursor state into the operation result: the
// byte count on success, or a capacity failure carrying the exact
// produced size when the stream outgrew dst.
func (w *boundedWriter) result() (int, error) {
	if w.total > len(w.dst) {
		return 0, ErrShortBuffer(w.total)
	}

	return w.n, nil
}
