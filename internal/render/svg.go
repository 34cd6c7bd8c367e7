package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/primsketch/internal/engine"
)

// SVG emits a vector document equivalent to Raster at the same scale: a
// canvas sized W*scale x H*scale, a background rect covering the whole
// canvas, and a single group applying the scale (shapes themselves stay
// in working-resolution coordinates) with one element per committed
// (shape, colour) using that shape's own vector serialisation.
func SVG(m *engine.Model, outSize int) string {
	workW, workH := m.Size()
	scale := Scale(workW, workH, outSize)
	svgW := int(math.Ceil(float64(workW) * scale))
	svgH := int(math.Ceil(float64(workH) * scale))

	bg := m.Background()

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgW, svgH, svgW, svgH)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#%02x%02x%02x" />`+"\n",
		svgW, svgH, bg.R(), bg.G(), bg.B())
	fmt.Fprintf(&b, `<g transform="scale(%g) translate(0.5 0.5)">`+"\n", scale)
	for _, st := range m.History() {
		fillAttr := fmt.Sprintf(`fill="#%02x%02x%02x" fill-opacity="%g"`,
			st.Color.R(), st.Color.G(), st.Color.B(), float64(st.Alpha)/255.0)
		b.WriteString(st.Shape.Vector(fillAttr))
		b.WriteByte('\n')
	}
	b.WriteString("</g>\n</svg>\n")
	return b.String()
}
