// Package combat resolves melee attacks between actors.
package combat

import "fmt"

// Combatant is the interface for anything that can attack or be attacked.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetPower() int
	GetDefense() int

	// TakeDamage applies damage and returns the amount actually taken.
	TakeDamage(amount int) int
}

// MeleeResult contains the outcome of one melee resolution.
type MeleeResult struct {
	Damage  int    // HP actually removed from the defender
	Killed  bool   // Defender died from this hit
	Message string // Human-readable description
}

// Resolver calculates and applies melee damage.
type Resolver struct{}

// NewResolver creates a melee resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve applies one melee attack from attacker to defender.
// Damage is attacker power minus defender defense, never negative.
func (r *Resolver) Resolve(attacker, defender Combatant) MeleeResult {
	if !attacker.IsAlive() || !defender.IsAlive() {
		return MeleeResult{}
	}

	damage := r.CalculateDamage(attacker, defender)
	if damage == 0 {
		return MeleeResult{
			Message: fmt.Sprintf("%s attacks %s but it has no effect!", attacker.GetName(), defender.GetName()),
		}
	}

	actual := defender.TakeDamage(damage)
	result := MeleeResult{
		Damage:  actual,
		Message: fmt.Sprintf("%s attacks %s for %d hit points.", attacker.GetName(), defender.GetName(), actual),
	}
	if !defender.IsAlive() {
		result.Killed = true
		result.Message += fmt.Sprintf(" %s dies!", defender.GetName())
	}
	return result
}

// CalculateDamage returns the damage an attack would deal without applying it.
func (r *Resolver) CalculateDamage(attacker, defender Combatant) int {
	return max(attacker.GetPower()-defender.GetDefense(), 0)
}
