package types

// MaxMoves is the proven upper bound on the number of legal moves in any
// reachable chess position.
const MaxMoves = 218

// MoveList is a fixed-capacity, heap-free buffer of moves. The zero value is
// an empty list ready to use.
type MoveList struct {
	moves   [MaxMoves]Move
	values  [MaxMoves]int32
	len     int
	inCheck bool
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.len
}

// InCheck reports whether the generator that filled this list found the
// side to move in check.
func (ml *MoveList) InCheck() bool {
	return ml.inCheck
}

// SetInCheck records the in-check flag for this list.
func (ml *MoveList) SetInCheck(b bool) {
	ml.inCheck = b
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.len = 0
	ml.inCheck = false
}

// Add appends a move with an ordering value of zero. Panics if the list is
// already at MaxMoves capacity, which would indicate a move-generation bug
// since MaxMoves is a proven upper bound.
func (ml *MoveList) Add(m Move) {
	ml.AddWithValue(m, 0)
}

// AddWithValue appends a move with an explicit ordering value, used by move
// ordering to stash a sort key alongside the move itself.
func (ml *MoveList) AddWithValue(m Move, value int32) {
	if ml.len >= MaxMoves {
		panic("types: MoveList overflow, more than MaxMoves legal moves generated")
	}
	ml.moves[ml.len] = m
	ml.values[ml.len] = value
	ml.len++
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// ValueAt returns the ordering value stashed alongside the move at index i.
func (ml *MoveList) ValueAt(i int) int32 {
	return ml.values[i]
}

// SetValueAt overwrites the ordering value at index i.
func (ml *MoveList) SetValueAt(i int, value int32) {
	ml.values[i] = value
}

// Swap exchanges the moves (and their values) at i and j. Satisfies
// sort.Interface together with Len and Less.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
	ml.values[i], ml.values[j] = ml.values[j], ml.values[i]
}

// Less orders by descending value, so sort.Sort produces best-move-first.
func (ml *MoveList) Less(i, j int) bool {
	return ml.values[i] > ml.values[j]
}

// Filter removes moves for which keep returns false, compacting the list in
// place.
func (ml *MoveList) Filter(keep func(Move) bool) {
	n := 0
	for i := 0; i < ml.len; i++ {
		if keep(ml.moves[i]) {
			ml.moves[n] = ml.moves[i]
			ml.values[n] = ml.values[i]
			n++
		}
	}
	ml.len = n
}

// ForEach calls fn for every move currently stored, in order.
func (ml *MoveList) ForEach(fn func(Move)) {
	for i := 0; i < ml.len; i++ {
		fn(ml.moves[i])
	}
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.len; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}
