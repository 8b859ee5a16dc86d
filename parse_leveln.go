package lcp

// parseLevelN scans a slice of already DCT-compressed cores and appends the
// next-level cores it finds to dst. It mirrors parseLevel1's pattern logic
// exactly, but compares whole cores (via Equal/Less/Greater on bitRep)
// instead of 2-bit symbol codes, and builds results with the child-run
// constructor instead of the raw-symbol one.
func parseLevelN(cores []Core, dst []Core) []Core {
	n := len(cores)
	it2 := n

	for it1 := 0; it1+2 < n; it1++ {
		if cores[it1].Equal(cores[it1+1]) {
			continue
		}

		if cores[it1+1].Equal(cores[it1+2]) {
			middleCount := 1
			temp := it1 + 2
			for temp < n && cores[temp-1].Equal(cores[temp]) {
				temp++
				middleCount++
			}
			if temp != n {
				if it2 < it1 {
					dst = append(dst, newCoreFromChildren(cores[it2-1:it1+1]))
				}
				newIt2 := it1 + 2 + middleCount
				dst = append(dst, newCoreFromChildren(cores[it1:newIt2]))
				it2 = newIt2
				continue
			}
		}

		if cores[it1].Greater(cores[it1+1]) && cores[it1+1].Less(cores[it1+2]) {
			if it2 < it1 {
				dst = append(dst, newCoreFromChildren(cores[it2-1:it1+1]))
			}
			newIt2 := it1 + 3
			dst = append(dst, newCoreFromChildren(cores[it1:newIt2]))
			it2 = newIt2
			continue
		}

		if it1 == 0 {
			continue
		}

		if it1+3 < n &&
			cores[it1].Less(cores[it1+1]) &&
			cores[it1+1].Greater(cores[it1+2]) &&
			cores[it1-1].LessOrEqual(cores[it1]) &&
			cores[it1+2].GreaterOrEqual(cores[it1+3]) {
			if it2 < it1 {
				dst = append(dst, newCoreFromChildren(cores[it2-1:it1+1]))
			}
			newIt2 := it1 + 3
			dst = append(dst, newCoreFromChildren(cores[it1:newIt2]))
			it2 = newIt2
			continue
		}
	}

	return dst
}
