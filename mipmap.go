// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

// calculateMipMapCount returns the full chain length down to 1x1.
func calculateMipMapCount(width, height int) (int, error) {
	count := 1
	w, err := u32FromInt(width)
	if err != nil {
		return 0, err
	}

	h, err := u32FromInt(height)
	if err != nil {
		return 0, err
	}

	for w > 1 || h > 1 {
		count++
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}

	return count, nil
}

// mipDimension calculates the dimension of a mipmap level.
func mipDimension(base, level int) int {
	result := base >> level
	if result < 1 {
		return 1
	}

	return result
}

// mipChainLength is the payload size of levels [0, count), or -1.
func mipChainLength(format Format, width, height, count int) int {
	total := 0
	for level := 0; level < count; level++ {
		n := expectedDataLength(format, mipDimension(width, level), mipDimension(height, level))
		if n < 0 {
			return -1
		}
		total += n
	}

	return total
}

// MipLevel returns the payload slice for one mip level of a block-compressed
// texture, and its dimensions. ok is false when the level is not present.
func (t *Texture) MipLevel(level int) (data []byte, width, height int, ok bool) {
	if level < 0 || !t.Format.BlockCompressed() {
		return nil, 0, 0, false
	}

	w, h := int(t.Width), int(t.Height)
	start := mipChainLength(t.Format, w, h, level)
	mw, mh := mipDimension(w, level), mipDimension(h, level)
	size := expectedDataLength(t.Format, mw, mh)
	if start < 0 || start+size > len(t.Data) {
		return nil, 0, 0, false
	}

	return t.Data[start : start+size], mw, mh, true
}
