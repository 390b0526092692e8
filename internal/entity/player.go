package entity

import "fmt"

type Mark string

const (
	MarkX    Mark = "X"
	MarkO    Mark = "O"
	MarkNone Mark = ""
)

// Player - index of a participant. PlayerOne always plays X and PlayerTwo always plays O,
// no matter who opens the game.
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

func (that Player) Mark() Mark {
	if that == PlayerTwo {
		return MarkO
	}
	return MarkX
}

func (that Player) Other() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Player) String() string {
	return fmt.Sprintf("player %d", int(that)+1)
}

// PlayerOf - returns the owner of a placed mark.
func PlayerOf(mark Mark) Player {
	if mark == MarkO {
		return PlayerTwo
	}
	return PlayerOne
}
