package history

// Ring is a fixed-capacity FIFO log of trade records for one sector. When
// full, appending evicts the oldest entry. Entries are never mutated.
type Ring struct {
	records []*TradeRecord
	head    int // index of the oldest entry
	size    int
}

// DefaultCapacity is the per-sector history depth used when configuration
// does not override it.
const DefaultCapacity = 100

// NewRing creates a ring buffer with the given capacity
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Ring{records: make([]*TradeRecord, capacity)}
}

// Capacity returns the fixed capacity of the ring
func (r *Ring) Capacity() int {
	return len(r.records)
}

// Len returns the number of entries currently held
func (r *Ring) Len() int {
	return r.size
}

// Append adds a record, evicting the oldest entry when the ring is full
func (r *Ring) Append(record *TradeRecord) {
	if record == nil {
		return
	}
	if r.size < len(r.records) {
		r.records[(r.head+r.size)%len(r.records)] = record
		r.size++
		return
	}
	// Full: overwrite the oldest slot and advance the head.
	r.records[r.head] = record
	r.head = (r.head + 1) % len(r.records)
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all
// held entries.
func (r *Ring) Recent(limit int) []*TradeRecord {
	if limit <= 0 || limit > r.size {
		limit = r.size
	}
	out := make([]*TradeRecord, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (r.head + r.size - 1 - i) % len(r.records)
		out = append(out, r.records[idx])
	}
	return out
}
