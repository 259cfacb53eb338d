// Package wire implements the frame format spoken by DFPlayer-Mini and
// Catalex compatible audio modules.
package wire

// Every exchange is a fixed 10-byte frame:
//
//	[0x7E][0xFF][0x06][kind][feedback][param hi][param lo][chk hi][chk lo][0xEF]
//
// The checksum is the two's complement of the 16-bit sum of the version,
// length, kind, feedback and parameter bytes, so adding it back to that sum
// yields zero. Some module variants drop the checksum and terminate the frame
// right after the parameter, which gives an 8-byte frame ending with 0xEF at
// offset 7. The Decoder accepts both forms.
//
// Producer: host controller and audio module
// Consumer: host controller and audio module
