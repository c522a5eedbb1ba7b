package responses

import (
	"strconv"
)

// ParseSearch returns the UIDs or sequence numbers listed in the untagged
// SEARCH responses. Values which are not numbers are skipped.
// See RFC 3501 section 7.2.5
func ParseSearch(r *Response) []uint64 {
	var nums []uint64
	for _, fields := range r.Data("SEARCH") {
		for _, f := range fields {
			s, ok := f.(string)
			if !ok {
				continue
			}
			if n, err := strconv.ParseUint(s, 10, 64); err == nil {
				nums = append(nums, n)
			}
		}
	}
	return nums
}
