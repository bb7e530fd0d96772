package types

// Value is a material or positional score expressed in centipawns.
type Value int32

// ValueZero is the neutral/empty value.
const ValueZero Value = 0
