package render

// destinationOut applies the subtractive composite over raw RGBA8 buffers:
// destination coverage is reduced by source coverage, dst.A *= 1 - src.A.
// Fully covered source pixels zero the destination outright so no color
// residue survives a hard erase.
func destinationOut(dst, src []uint8) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 3; i < n; i += 4 {
		sa := src[i]
		switch sa {
		case 0:
		case 255:
			dst[i-3] = 0
			dst[i-2] = 0
			dst[i-1] = 0
			dst[i] = 0
		default:
			dst[i] = uint8(uint32(dst[i]) * uint32(255-sa) / 255)
		}
	}
}
