package render

// fillRGBA expands packed RGB cell data into opaque RGBA pixels in buf. Extra
// cells beyond the capacity of buf are ignored.
func fillRGBA(buf []byte, cells []uint8) {
	n := len(cells) / 3
	if m := len(buf) / 4; m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		src := i * 3
		dst := i * 4
		buf[dst+0] = cells[src+0]
		buf[dst+1] = cells[src+1]
		buf[dst+2] = cells[src+2]
		buf[dst+3] = 0xff
	}
}
