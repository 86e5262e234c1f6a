package game

import (
	"fmt"
	"strings"
)

// Player is a seat at the table. Index is the seat position and is the
// identity used everywhere; Name is cosmetic.
type Player struct {
	Index int
	Name  string
}

func (p Player) String() string {
	return fmt.Sprintf("%d-%s", p.Index, p.Name)
}

// Team is an ordered set of players.
type Team []Player

// Contains reports whether p is a member of the team.
func (t Team) Contains(p Player) bool {
	return t.IndexOf(p) >= 0
}

// IndexOf returns the position of p in the team, or -1.
func (t Team) IndexOf(p Player) int {
	for i, member := range t {
		if member.Index == p.Index {
			return i
		}
	}
	return -1
}

// Without returns a copy of the team with every player in drop removed.
func (t Team) Without(drop ...Player) Team {
	out := make(Team, 0, len(t))
	for _, p := range t {
		if !Team(drop).Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Intersect returns members of t that are also in other, in t's order.
func (t Team) Intersect(other Team) Team {
	var out Team
	for _, p := range t {
		if other.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// SubsetOf reports whether every member of t is in other.
func (t Team) SubsetOf(other Team) bool {
	for _, p := range t {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Distinct reports whether no player appears twice.
func (t Team) Distinct() bool {
	seen := make(map[int]bool, len(t))
	for _, p := range t {
		if seen[p.Index] {
			return false
		}
		seen[p.Index] = true
	}
	return true
}

// Clone returns a copy that does not alias t.
func (t Team) Clone() Team {
	if t == nil {
		return nil
	}
	out := make(Team, len(t))
	copy(out, t)
	return out
}

func (t Team) String() string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
