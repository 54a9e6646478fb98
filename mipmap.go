package ktx2

// calculateMipMapCount calculates the number of mip levels of a full chain.
func calculateMipMapCount(width, height, depth int) (int, error) {
	w, err := u32FromInt(width)
	if err != nil {
		return 0, err
	}
	h, err := u32FromInt(height)
	if err != nil {
		return 0, err
	}
	d, err := u32FromInt(depth)
	if err != nil {
		return 0, err
	}

	count := 1
	for w > 1 || h > 1 || d > 1 {
		count++
		w /= 2
		h /= 2
		d /= 2
	}

	return count, nil
}

// mipDimension calculates the dimension of a mip level.
func mipDimension(base, level uint32) uint32 {
	if level >= 32 {
		return 1
	}

	return max(base>>level, 1)
}
