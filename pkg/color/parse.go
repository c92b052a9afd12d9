package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse normalizes a raw CSS colour token into an RGBA value.
//
// Accepted syntaxes: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb()/rgba() with
// integer or percentage channels, hsl()/hsla(), and named CSS colours.
// Out-of-range channels are clamped rather than rejected; a missing alpha
// defaults to 1.0. Case and surrounding whitespace are insignificant.
func Parse(raw string) (RGBA, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return RGBA{}, fmt.Errorf("%w: empty token", ErrUnparsableColor)
	}

	switch {
	case strings.HasPrefix(token, "#"):
		return parseHex(token)
	case strings.HasPrefix(token, "rgb(") || strings.HasPrefix(token, "rgba("):
		return parseRGBFunc(token)
	case strings.HasPrefix(token, "hsl(") || strings.HasPrefix(token, "hsla("):
		return parseHSLFunc(token)
	}

	if c, ok := namedColors[token]; ok {
		return c, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrUnparsableColor, raw)
}

func parseHex(token string) (RGBA, error) {
	digits := token[1:]

	// Expand shorthand forms (#abc, #abcd) to full width.
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	if len(digits) != 6 && len(digits) != 8 {
		return RGBA{}, fmt.Errorf("%w: bad hex length %q", ErrUnparsableColor, token)
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(digits)/2; i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad hex digits %q", ErrUnparsableColor, token)
		}
		ch[i] = uint8(v)
	}

	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: float64(ch[3]) / 255}, nil
}

// functionArgs extracts the comma/space separated arguments from a
// functional token such as "rgb(1, 2, 3)". The "/" alpha separator of the
// modern space syntax is treated like any other delimiter.
func functionArgs(token string) ([]string, error) {
	open := strings.IndexByte(token, '(')
	if open < 0 || !strings.HasSuffix(token, ")") {
		return nil, fmt.Errorf("%w: malformed function %q", ErrUnparsableColor, token)
	}
	inner := token[open+1 : len(token)-1]
	args := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '/'
	})
	if len(args) < 3 || len(args) > 4 {
		return nil, fmt.Errorf("%w: expected 3 or 4 channels in %q", ErrUnparsableColor, token)
	}
	return args, nil
}

// parseChannel parses an rgb channel that may be an integer or a
// percentage, clamped to [0,255].
func parseChannel(arg string) (uint8, error) {
	if strings.HasSuffix(arg, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clamp8(pct / 100 * 255), nil
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	return clamp8(v), nil
}

// parseAlpha parses an alpha term that may be a float or a percentage,
// clamped to [0,1].
func parseAlpha(arg string) (float64, error) {
	if strings.HasSuffix(arg, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clamp01(pct / 100), nil
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v), nil
}

func parseRGBFunc(token string) (RGBA, error) {
	args, err := functionArgs(token)
	if err != nil {
		return RGBA{}, err
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseChannel(args[i])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad channel %q", ErrUnparsableColor, args[i])
		}
		ch[i] = v
	}

	alpha := 1.0
	if len(args) == 4 {
		alpha, err = parseAlpha(args[3])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad alpha %q", ErrUnparsableColor, args[3])
		}
	}

	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func parseHSLFunc(token string) (RGBA, error) {
	args, err := functionArgs(token)
	if err != nil {
		return RGBA{}, err
	}

	hueArg := strings.TrimSuffix(args[0], "deg")
	hue, err := strconv.ParseFloat(hueArg, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: bad hue %q", ErrUnparsableColor, args[0])
	}
	// Wrap hue into [0,360).
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	sat, err := parsePercent(args[1])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: bad saturation %q", ErrUnparsableColor, args[1])
	}
	light, err := parsePercent(args[2])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: bad lightness %q", ErrUnparsableColor, args[2])
	}

	alpha := 1.0
	if len(args) == 4 {
		alpha, err = parseAlpha(args[3])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad alpha %q", ErrUnparsableColor, args[3])
		}
	}

	r, g, b := hslToRGB(hue, sat, light)
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// parsePercent parses a percentage (with or without the % sign) into [0,1].
func parsePercent(arg string) (float64, error) {
	arg = strings.TrimSuffix(arg, "%")
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v / 100), nil
}

// hslToRGB converts HSL (h in degrees, s and l in [0,1]) to 8-bit RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	if s == 0 {
		v := clamp8(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	conv := func(t float64) float64 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		switch {
		case t < 1.0/6:
			return p + (q-p)*6*t
		case t < 1.0/2:
			return q
		case t < 2.0/3:
			return p + (q-p)*(2.0/3-t)*6
		default:
			return p
		}
	}

	return clamp8(conv(hk+1.0/3) * 255), clamp8(conv(hk) * 255), clamp8(conv(hk-1.0/3) * 255)
}
