package canvas

// sumSquaredDiff sums, over every 4-byte RGBA pixel in a and b (which must
// be the same length), the squared per-channel difference across all four
// channels. Portable scalar fallback; see metric.go for backend selection.
func sumSquaredDiff(a, b []byte) int64 {
	var total int64
	for i := 0; i+3 < len(a); i += 4 {
		dr := int64(a[i]) - int64(b[i])
		dg := int64(a[i+1]) - int64(b[i+1])
		db := int64(a[i+2]) - int64(b[i+2])
		da := int64(a[i+3]) - int64(b[i+3])
		total += dr*dr + dg*dg + db*db + da*da
	}
	return total
}
