package oxide

import "math"

// Clear zeroes every pixel of the buffer.
func Clear(buf *OffscreenBuffer) {
	rowBytes := buf.Width * BytesPerPixel
	for y := 0; y < buf.Height; y++ {
		clear(buf.Memory[y*buf.Pitch : y*buf.Pitch+rowBytes])
	}
}

// DrawPixel writes color (0xAARRGGBB) at (x, y). Alpha 255 overwrites the
// pixel; any other alpha interpolates each of R, G and B linearly from the
// existing value toward the new one, keeping the destination padding byte.
// The caller guarantees that (x, y) is inside the buffer.
func DrawPixel(buf *OffscreenBuffer, x, y uint32, color uint32) {
	alpha := colorAlpha(color)
	if alpha == 1 {
		buf.setPixel(x, y, color)
		return
	}
	dst := buf.Pixel(x, y)
	buf.setPixel(x, y, dst&0xFF000000|lerpColor(dst, color, alpha))
}

func colorAlpha(color uint32) float32 {
	return float32(color>>24) / 255
}

// withAlpha replaces the alpha byte of color.
func withAlpha(color uint32, alpha uint32) uint32 {
	return color&0x00FFFFFF | alpha<<24
}

// lerpColor interpolates the RGB channels of a toward b by t, truncating each
// channel to 8 bits. The alpha byte of the result is zero.
func lerpColor(a, b uint32, t float32) uint32 {
	ar, ag, ab := float32(uint8(a>>16)), float32(uint8(a>>8)), float32(uint8(a))
	br, bg, bb := float32(uint8(b>>16)), float32(uint8(b>>8)), float32(uint8(b))

	r := uint8(ar + t*(br-ar))
	g := uint8(ag + t*(bg-ag))
	bl := uint8(ab + t*(bb-ab))
	return uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
}

// plot draws a pixel after clamping negative coordinates to zero and dropping
// pixels past the right or bottom edge.
func plot(buf *OffscreenBuffer, x, y int32, color uint32) {
	ux := uint32(max(x, 0))
	uy := uint32(max(y, 0))
	if ux >= uint32(buf.Width) || uy >= uint32(buf.Height) {
		return
	}
	DrawPixel(buf, ux, uy, color)
}

// DrawLine draws an anti-aliased line between two world points using Xiaolin
// Wu's algorithm: the pixel under the running intercept gets the full color
// and its neighbour above gets the fractional coverage as alpha.
func DrawLine(buf *OffscreenBuffer, cam Camera, a, b Vec2, color uint32) {
	sa := cam.WorldToScreenInt(a)
	sb := cam.WorldToScreenInt(b)

	x0, y0 := sa.X, sa.Y
	x1, y1 := sb.X, sb.Y

	steep := absI32(y1-y0) > absI32(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	gradient := float32(1)
	if dx := x1 - x0; dx != 0 {
		gradient = float32(y1-y0) / float32(dx)
	}

	// Past this value of x every plot lands beyond the right or bottom edge.
	limit := int32(buf.Width)
	if steep {
		limit = int32(buf.Height)
	}

	intercept := float32(y0)
	for x := x0; x <= x1 && x < limit; x++ {
		whole := float32(math.Floor(float64(intercept)))
		frac := intercept - whole
		y := satI32(whole)
		edge := withAlpha(color, uint32((1-frac)*255))

		if steep {
			plot(buf, y, x, color)
			plot(buf, y-1, x, edge)
		} else {
			plot(buf, x, y, color)
			plot(buf, x, y-1, edge)
		}

		intercept += gradient
		if x == math.MaxInt32 {
			break
		}
	}
}

// DrawCircle draws a filled circle with a one-pixel anti-aliased rim.
func DrawCircle(buf *OffscreenBuffer, cam Camera, center Vec2, radius float32, color uint32) {
	if buf.Width == 0 || buf.Height == 0 {
		return
	}
	c := cam.WorldToScreenInt(center)
	r := satI32(radius * cam.YScale)

	startX := max(c.X-r, 0)
	startY := max(c.Y-r, 0)
	endX := min(max(c.X+r, 0), int32(buf.Width)-1)
	endY := min(max(c.Y+r, 0), int32(buf.Height)-1)

	rf := float32(r)
	for x := startX; x <= endX; x++ {
		for y := startY; y <= endY; y++ {
			dx := float64(x - c.X)
			dy := float64(y - c.Y)
			dist := float32(math.Sqrt(dx*dx + dy*dy))
			switch {
			case dist <= rf:
				DrawPixel(buf, uint32(x), uint32(y), color)
			case dist <= rf+1:
				frac := dist - float32(math.Floor(float64(dist)))
				DrawPixel(buf, uint32(x), uint32(y), withAlpha(color, uint32((1-frac)*255)))
			}
		}
	}
}

// DrawRectangle fills a world-space rectangle, clipped to the buffer. Colors
// with alpha below 255 blend over the existing pixels.
func DrawRectangle(buf *OffscreenBuffer, cam Camera, rect Rect, color uint32) {
	topLeft := cam.WorldToScreen(Vec2{X: rect.X, Y: rect.Y})
	bottomRight := cam.WorldToScreen(Vec2{X: rect.X + rect.Width, Y: rect.Y + rect.Height})

	endX := min(bottomRight.X, uint32(buf.Width))
	endY := min(bottomRight.Y, uint32(buf.Height))

	for x := topLeft.X; x < endX; x++ {
		for y := topLeft.Y; y < endY; y++ {
			DrawPixel(buf, x, y, color)
		}
	}
}

// DrawUnitGrid draws a line at every integer world coordinate. Line positions
// wrap around the buffer, so the grid tiles regardless of camera position.
func DrawUnitGrid(buf *OffscreenBuffer, cam Camera) {
	if buf.Width == 0 || buf.Height == 0 {
		return
	}

	yOffset := fpart(cam.Height/2) + gridFpart(cam.Y)
	for line := uint32(0); line < satU32(cam.Height); line++ {
		y := remEuclid(satI32((float32(line)-yOffset)*cam.YScale), int32(buf.Height))
		for x := uint32(0); x < uint32(buf.Width); x++ {
			DrawPixel(buf, x, y, ColorGrid)
		}
	}

	xOffset := fpart(cam.Width/2) + gridFpart(cam.X)
	for line := uint32(0); line < satU32(cam.Width); line++ {
		x := remEuclid(satI32((float32(line)-xOffset)*cam.YScale), int32(buf.Width))
		for y := uint32(0); y < uint32(buf.Height); y++ {
			DrawPixel(buf, x, y, ColorGrid)
		}
	}
}

// fpart returns f minus its truncated integer part.
func fpart(f float32) float32 {
	return f - float32(satI32(f))
}

// gridFpart is the fractional part used to anchor grid lines: f - trunc(f) for
// non-negative f, 1 - frac(|f|) for negative f.
func gridFpart(f float32) float32 {
	if f >= 0 {
		return fpart(f)
	}
	return 1 + (f + float32(satI32(-f)))
}

func remEuclid(v, m int32) uint32 {
	r := v % m
	if r < 0 {
		r += m
	}
	return uint32(r)
}

func absI32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
