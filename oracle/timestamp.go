// Package oracle models the logical timestamps issued by the placement
// driver's timestamp oracle. A timestamp is a (physical, logical) pair; on
// the wire every protocol field carries the composed 64-bit version number
// instead. The same timestamp can serve as a start version, commit version,
// for-update version or GC safepoint; the role is decided purely by which
// request field the caller puts it in.
package oracle

import (
	"github.com/pingcap/kvproto/pkg/pdpb"
)

// physicalShiftBits is how far the physical time (milliseconds) is shifted
// left in a composed version; the low bits hold the logical counter.
const physicalShiftBits = 18

const logicalMask = (1 << physicalShiftBits) - 1

// Timestamp is a logical clock value from the timestamp oracle.
type Timestamp struct {
	pdpb.Timestamp
}

// NewTimestamp builds a timestamp from its physical and logical parts.
func NewTimestamp(physical, logical int64) Timestamp {
	return Timestamp{Timestamp: pdpb.Timestamp{Physical: physical, Logical: logical}}
}

// FromVersion decomposes a composed version number into a timestamp.
func FromVersion(version uint64) Timestamp {
	return NewTimestamp(int64(version>>physicalShiftBits), int64(version&logicalMask))
}

// Version composes the timestamp into the single version number used in wire
// messages.
func (ts Timestamp) Version() uint64 {
	return uint64(ts.Physical)<<physicalShiftBits + uint64(ts.Logical)
}
