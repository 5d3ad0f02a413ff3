// This file is part of Snescore.
//
// Snescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Snescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Snescore.  If not, see <https://www.gnu.org/licenses/>.

package registers

// Add performs the ADC operation. The result, carry and overflow flags are
// returned. Decimal mode follows the 65C816, which produces a valid overflow
// flag in decimal mode.
func Add(a, b uint16, carry bool, decimal bool, wide bool) (uint16, bool, bool) {
	return add(a, b, carry, decimal, wide, false)
}

// Subtract performs the SBC operation. The result, carry and overflow flags
// are returned. The carry flag is the inverse of borrow.
func Subtract(a, b uint16, carry bool, decimal bool, wide bool) (uint16, bool, bool) {
	return add(a, ^b, carry, decimal, wide, true)
}

func add(a, b uint16, carry bool, decimal bool, wide bool, subtract bool) (uint16, bool, bool) {
	nibbles := 2
	mask := 0xff
	if wide {
		nibbles = 4
		mask = 0xffff
	}

	av := int(a) & mask
	bv := int(b) & mask
	var c int
	if carry {
		c = 1
	}

	top := uint(nibbles-1) * 4
	var result int

	if !decimal {
		result = av + bv + c
	} else {
		for i := range nibbles {
			shift := uint(i) * 4
			nm := 0xf << shift
			low := (1 << shift) - 1
			result = av&nm + bv&nm + c<<shift + result&low
			if shift == top {
				break
			}
			if subtract {
				if result <= (0x10<<shift)-1 {
					result -= 0x6 << shift
				}
			} else if result > (0xa<<shift)-1 {
				result += 0x6 << shift
			}
			c = 0
			if result > (0x10<<shift)-1 {
				c = 1
			}
		}
	}

	overflow := ^(av^bv)&(av^result)&(0x8<<top) != 0

	if decimal {
		if subtract {
			if result <= (0x10<<top)-1 {
				result -= 0x6 << top
			}
		} else if result > (0xa<<top)-1 {
			result += 0x6 << top
		}
	}

	return uint16(result & mask), result > mask, overflow
}
