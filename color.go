package touchstroke

import "github.com/gogpu/gg"

const hexDigits = "0123456789abcdef"

// ColorOf returns the display color for a contact identifier as a
// three-digit CSS hex string ("#rgb").
//
// The nibbles are id mod 16, floor(id/3) mod 16 and floor(id/7) mod 16.
// The result is a pure function of id. Different identifiers may map to the
// same color; ColorOf(0) and ColorOf(16) share a red nibble, for example.
func ColorOf(id int) string {
	b := [4]byte{
		'#',
		hexDigits[mod16(id)],
		hexDigits[mod16(floorDiv(id, 3))],
		hexDigits[mod16(floorDiv(id, 7))],
	}
	return string(b[:])
}

// Color returns ColorOf(id) as a gg color.
func Color(id int) gg.RGBA {
	return gg.Hex(ColorOf(id))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod16 returns a in [0, 16) for any sign of a.
func mod16(a int) int {
	m := a % 16
	if m < 0 {
		m += 16
	}
	return m
}
