package imap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errBadUIDSet is used to report problems with the format of a UID set value.
type errBadUIDSet string

func (err errBadUIDSet) Error() string {
	return fmt.Sprintf("imap: bad UID set value %q", string(err))
}

// UIDRange is a contiguous run of UIDs, Start <= Stop. A single UID is
// represented by Start == Stop.
type UIDRange struct {
	Start, Stop uint64
}

// parseUID parses a single non-zero UID. "*" is not accepted: UID sets
// returned by servers in response codes are always static.
func parseUID(v string) (uint64, error) {
	if n, err := strconv.ParseUint(v, 10, 64); err == nil && n != 0 {
		return n, nil
	}
	return 0, errBadUIDSet(v)
}

// parseUIDRange parses "n" or "n:m". The bounds are swapped if m < n.
func parseUIDRange(v string) (UIDRange, error) {
	sep := strings.IndexByte(v, ':')
	if sep < 0 {
		n, err := parseUID(v)
		return UIDRange{n, n}, err
	}

	start, err := parseUID(v[:sep])
	if err != nil {
		return UIDRange{}, errBadUIDSet(v)
	}
	stop, err := parseUID(v[sep+1:])
	if err != nil {
		return UIDRange{}, errBadUIDSet(v)
	}
	if stop < start {
		start, stop = stop, start
	}
	return UIDRange{start, stop}, nil
}

// Contains returns true if uid is within r.
func (r UIDRange) Contains(uid uint64) bool {
	return r.Start <= uid && uid <= r.Stop
}

// merge combines r and t if they overlap or touch. The order of r and t does
// not matter.
func (r UIDRange) merge(t UIDRange) (UIDRange, bool) {
	if r.Start > t.Start {
		r, t = t, r
	}
	if r.Stop >= t.Stop {
		return r, true // r is a superset of t
	}
	if r.Stop+1 >= t.Start {
		return UIDRange{r.Start, t.Stop}, true
	}
	return r, false
}

// String returns r as a uid or uid range string.
func (r UIDRange) String() string {
	if r.Start == r.Stop {
		return strconv.FormatUint(r.Start, 10)
	}
	b := strconv.AppendUint(make([]byte, 0, 24), r.Start, 10)
	return string(strconv.AppendUint(append(b, ':'), r.Stop, 10))
}

// UIDSet is a set of UIDs, kept as sorted, non-adjacent ranges so that its
// string form is the most compact id-spec. The zero value is an empty set.
type UIDSet []UIDRange

// ParseUIDSet parses a comma-separated list of UIDs and UID ranges.
func ParseUIDSet(s string) (UIDSet, error) {
	var set UIDSet
	for _, v := range strings.Split(s, ",") {
		r, err := parseUIDRange(v)
		if err != nil {
			return nil, err
		}
		set.insert(r)
	}
	return set, nil
}

// UIDSetNum returns a new UIDSet containing the UIDs.
func UIDSetNum(uids ...uint64) UIDSet {
	var s UIDSet
	s.AddNum(uids...)
	return s
}

// AddNum inserts UIDs into the set.
func (s *UIDSet) AddNum(uids ...uint64) {
	for _, uid := range uids {
		s.insert(UIDRange{uid, uid})
	}
}

// AddRange inserts the contiguous group start:stop into the set.
func (s *UIDSet) AddRange(start, stop uint64) {
	if stop < start {
		start, stop = stop, start
	}
	s.insert(UIDRange{start, stop})
}

// AddSet inserts all values from t into s.
func (s *UIDSet) AddSet(t UIDSet) {
	for _, r := range t {
		s.insert(r)
	}
}

// IsEmpty returns true if the set contains no UIDs.
func (s UIDSet) IsEmpty() bool {
	return len(s) == 0
}

// Contains returns true if uid is in the set.
func (s UIDSet) Contains(uid uint64) bool {
	i := s.search(uid)
	return i < len(s) && s[i].Contains(uid)
}

// Valid returns ErrInvalidUID if the set contains 0.
func (s UIDSet) Valid() error {
	if len(s) > 0 && s[0].Start == 0 {
		return ErrInvalidUID
	}
	return nil
}

// Len returns the number of UIDs in the set.
func (s UIDSet) Len() uint64 {
	var n uint64
	for _, r := range s {
		n += r.Stop - r.Start + 1
	}
	return n
}

// Nums returns all UIDs of the set in ascending order.
func (s UIDSet) Nums() []uint64 {
	var nums []uint64
	for _, r := range s {
		for uid := r.Start; ; uid++ {
			nums = append(nums, uid)
			if uid == r.Stop {
				break
			}
		}
	}
	return nums
}

// Clone returns a copy of s which shares no memory with it.
func (s UIDSet) Clone() UIDSet {
	if s == nil {
		return nil
	}
	return append(UIDSet(nil), s...)
}

// String returns the id-spec of the set: ascending, comma-separated UIDs and
// "start:stop" ranges. Runs of consecutive UIDs are always collapsed.
func (s UIDSet) String() string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, 0, 64)
	for i, r := range s {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendUint(b, r.Start, 10)
		if r.Start != r.Stop {
			b = strconv.AppendUint(append(b, ':'), r.Stop, 10)
		}
	}
	return string(b)
}

// insert adds r to the set, merging it with every range it overlaps or
// touches.
func (ptr *UIDSet) insert(r UIDRange) {
	s := *ptr

	// first range which ends at or after r.Start-1, i.e. could merge with r
	i := 0
	if r.Start > 0 {
		i = s.search(r.Start - 1)
	}

	j := i
	for j < len(s) {
		merged, ok := s[j].merge(r)
		if !ok {
			break
		}
		r = merged
		j++
	}

	switch {
	case j > i:
		// s[i:j] were merged into r
		s[i] = r
		s = append(s[:i+1], s[j:]...)
	case i == len(s):
		s = append(s, r)
	default:
		s = append(s, UIDRange{})
		copy(s[i+1:], s[i:])
		s[i] = r
	}
	*ptr = s
}

// search returns the index of the first range whose Stop is >= uid.
func (s UIDSet) search(uid uint64) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid].Stop < uid {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// MaxExpandedUIDs is the largest number of UIDs ExpandUIDs and ExpandUIDPairs
// enumerate. Larger sets are rejected before any UID is enumerated.
const MaxExpandedUIDs = 1 << 20

// ErrTooManyUIDs is returned when a UID set expression expands to more than
// MaxExpandedUIDs UIDs.
var ErrTooManyUIDs = fmt.Errorf("imap: UID set expands to more than %v UIDs", MaxExpandedUIDs)

// errUnbalancedUIDs is returned by ExpandUIDPairs when both sides don't have
// the same number of UIDs.
var errUnbalancedUIDs = errors.New("imap: UID sets have different sizes")

// parseUIDGroups parses the comma-separated groups of s in order and returns
// the number of UIDs they hold.
func parseUIDGroups(s string) ([]UIDRange, uint64, error) {
	if s == "" {
		return nil, 0, errBadUIDSet(s)
	}

	var (
		groups []UIDRange
		total  uint64
	)
	for _, v := range strings.Split(s, ",") {
		r, err := parseUIDRange(v)
		if err != nil {
			return nil, 0, err
		}
		n := r.Stop - r.Start + 1
		if n > MaxExpandedUIDs-total {
			return nil, 0, ErrTooManyUIDs
		}
		total += n
		groups = append(groups, r)
	}
	return groups, total, nil
}

func expandGroups(groups []UIDRange, total uint64) []uint64 {
	uids := make([]uint64, 0, total)
	for _, r := range groups {
		for uid := r.Start; ; uid++ {
			uids = append(uids, uid)
			if uid == r.Stop {
				break
			}
		}
	}
	return uids
}

// ExpandUIDs expands a UID set expression into individual UIDs. Unlike
// ParseUIDSet, the result keeps the left-to-right order of the
// comma-separated groups; each range is enumerated in ascending order.
func ExpandUIDs(s string) ([]uint64, error) {
	groups, total, err := parseUIDGroups(s)
	if err != nil {
		return nil, err
	}
	return expandGroups(groups, total), nil
}

// ExpandUIDPairs expands two UID set expressions which must hold the same
// number of UIDs, e.g. the source and destination sets of COPYUID. Sizes are
// compared before either side is enumerated.
func ExpandUIDPairs(a, b string) ([]uint64, []uint64, error) {
	groupsA, totalA, err := parseUIDGroups(a)
	if err != nil {
		return nil, nil, err
	}
	groupsB, totalB, err := parseUIDGroups(b)
	if err != nil {
		return nil, nil, err
	}
	if totalA != totalB {
		return nil, nil, errUnbalancedUIDs
	}
	return expandGroups(groupsA, totalA), expandGroups(groupsB, totalB), nil
}
