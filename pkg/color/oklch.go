package color

import "math"

// Conversion matrices for the OKLab pipeline (Björn Ottosson's reference
// values). Linear sRGB → LMS-like cone response, then nonlinear LMS → OKLab,
// plus their inverses. Process-wide read-only constants.
var (
	rgbToLMS = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToLab = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	labToLMS = [3][3]float64{
		{1.0, 0.3963377774, 0.2158037573},
		{1.0, -0.1055613458, -0.0638541728},
		{1.0, -0.0894841775, -1.2914855480},
	}
	lmsToRGB = [3][3]float64{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// srgbToLinear applies the sRGB gamma decoding transfer function.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB applies the sRGB gamma encoding transfer function.
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func mulMatrix(m [3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// ToOKLCH converts an RGBA colour to cylindrical OKLab coordinates.
// Alpha is carried outside the perceptual coordinates and is not involved.
func ToOKLCH(c RGBA) OKLCH {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)

	l, m, s := mulMatrix(rgbToLMS, r, g, b)
	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)
	lab0, labA, labB := mulMatrix(lmsToLab, l, m, s)

	chroma := math.Sqrt(labA*labA + labB*labB)
	hue := math.Atan2(labB, labA) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}

	return OKLCH{L: lab0, C: chroma, H: hue}
}

// ToRGBA converts cylindrical OKLab coordinates back to an 8-bit sRGB
// colour with the given alpha. Out-of-gamut results are clamped per channel.
func (o OKLCH) ToRGBA(alpha float64) RGBA {
	hRad := o.H * math.Pi / 180
	labA := o.C * math.Cos(hRad)
	labB := o.C * math.Sin(hRad)

	l, m, s := mulMatrix(labToLMS, o.L, labA, labB)
	l, m, s = l*l*l, m*m*m, s*s*s
	r, g, b := mulMatrix(lmsToRGB, l, m, s)

	return RGBA{
		R: clamp8(linearToSRGB(r) * 255),
		G: clamp8(linearToSRGB(g) * 255),
		B: clamp8(linearToSRGB(b) * 255),
		A: clamp01(alpha),
	}
}

// Distance returns the perceptual distance between two OKLCH colours,
// equivalent to Euclidean distance in OKLab. Hue is treated circularly via
// the chord term 2·sqrt(C1·C2)·sin(Δh/2), so achromatic colours with
// arbitrary hues stay close.
func Distance(a, b OKLCH) float64 {
	dL := a.L - b.L
	dC := a.C - b.C

	dh := math.Abs(a.H - b.H)
	if dh > 180 {
		dh = 360 - dh
	}
	dH := 2 * math.Sqrt(a.C*b.C) * math.Sin(dh/2*math.Pi/180)

	return math.Sqrt(dL*dL + dC*dC + dH*dH)
}

// HueDelta returns the shorter angular distance between two hues in degrees.
func HueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
