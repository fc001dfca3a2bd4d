package colors

// Palette is an ordered list of reference colors. Order breaks distance ties.
type Palette []NamedColor

// Nearest returns the entry closest to c by squared Euclidean RGB distance and its
// index. On equal distance the lowest index wins. An empty palette returns -1.
func (p Palette) Nearest(c RGB) (NamedColor, int) {
	best := -1
	var bestDist uint32
	for i := range p {
		d := dist2(p[i].RGB, c)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return NamedColor{}, -1
	}
	return p[best], best
}

// Match returns the name of the Default palette entry nearest to (r, g, b).
func Match(r, g, b uint8) string {
	nc, _ := Default.Nearest(RGB{R: r, G: g, B: b})
	return nc.Name
}

func dist2(a, b RGB) uint32 {
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)
	return uint32(dr*dr + dg*dg + db*db)
}
