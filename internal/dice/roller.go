// Package dice provides the dice-roll source for every randomized game
// mechanic. Production code rolls through rpg-toolkit; tests inject a
// scripted roller so outcomes are deterministic.
package dice

import (
	"sync"

	toolkit "github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roller produces the sum of rolling count dice with the given number
// of sides.
type Roller interface {
	Roll(count, sides int) int
}

// ToolkitRoller rolls through rpg-toolkit's dice module.
type ToolkitRoller struct{}

// NewToolkitRoller creates the production roller
func NewToolkitRoller() *ToolkitRoller {
	return &ToolkitRoller{}
}

// Roll returns the sum of count dice with the given sides. Invalid
// inputs roll nothing and return 0.
func (r *ToolkitRoller) Roll(count, sides int) int {
	roll, err := toolkit.NewRoll(count, sides)
	if err != nil {
		return 0
	}
	return roll.GetValue()
}

// FixedRoller returns scripted sums in order, for tests. Once the
// script is exhausted it repeats the last value.
type FixedRoller struct {
	mu   sync.Mutex
	sums []int
	next int
}

// NewFixedRoller creates a roller that yields the given sums in order
func NewFixedRoller(sums ...int) *FixedRoller {
	return &FixedRoller{sums: sums}
}

// Roll returns the next scripted sum
func (r *FixedRoller) Roll(count, sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sums) == 0 {
		return 0
	}
	if r.next >= len(r.sums) {
		return r.sums[len(r.sums)-1]
	}
	v := r.sums[r.next]
	r.next++
	return v
}

// Push appends more scripted sums
func (r *FixedRoller) Push(sums ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sums = append(r.sums, sums...)
}
