package diskmap

// Checksum returns the sum of each occupied slot's index multiplied by the ID of
// the file in it. Free slots contribute nothing.
func Checksum(l Layout) uint64 {
	total := uint64(0)
	for i, slot := range l {
		if !slot.IsFree() {
			total += uint64(i) * uint64(slot)
		}
	}
	return total
}
