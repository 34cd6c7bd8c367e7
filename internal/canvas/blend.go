package canvas

// blendOver composites source (sr,sg,sb,sa) over destination (dr,dg,db,da)
// using straight-alpha, integer source-over blending. All intermediates
// are 32-bit; no floating point.
//
// This is correct when the destination alpha is always 255 — true here
// because the canvas starts from an opaque Erase, and compositing any
// source over da = 255 gives oa = sa + (255-sa) = 255.
func blendOver(sr, sg, sb, sa, dr, dg, db, da uint8) (or, og, ob, oa uint8) {
	s := int32(sa)
	diff := int32(255) - s
	d := int32(da)

	outR := (int32(sr)*s + int32(dr)*d*diff/255) >> 8
	outG := (int32(sg)*s + int32(dg)*d*diff/255) >> 8
	outB := (int32(sb)*s + int32(db)*d*diff/255) >> 8
	outA := s + d*diff/255

	return uint8(outR), uint8(outG), uint8(outB), uint8(outA)
}
