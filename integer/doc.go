// Package integer provides the integer encodings used by fields.
//
// Fixed Width
//
// Bit-packed fields carry integers in a fixed number of bits. Truncate keeps
// the low bits of the two's complement representation. Extend reads a slice
// back, treating its top bit as the sign:
//
//  Truncate(5, 3)  = 0b101
//  Truncate(9, 4)  = 0b1001
//  Truncate(-1, 4) = 0b1111
//  Truncate(17, 4) = 0b0001
//
// Zigzag
//
// Block is a signed integer laid out big-endian with a trailing sign bit:
//
//  | magnitude ... | s |
//
// The magnitude is shifted left by one and the sign occupies bit 0. Zero is
// a single zero byte.
//
//  +1   = 0b0000_0010
//  -1   = 0b0000_0011
//  +127 = 0b1111_1110
//  -127 = 0b1111_1111
package integer
