package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_C       Position = "C"
	POS_LW      Position = "LW"
	POS_RW      Position = "RW"
	POS_D       Position = "D"
	POS_G       Position = "G"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "c":
		return POS_C
	case "lw":
		return POS_LW
	case "rw":
		return POS_RW
	case "d":
		return POS_D
	case "g":
		return POS_G
	default:
		return POS_UNKNOWN
	}
}

// IsSkater returns true for every position except goalie and unknown.
func (p Position) IsSkater() bool {
	switch p {
	case POS_C, POS_LW, POS_RW, POS_D:
		return true
	default:
		return false
	}
}
