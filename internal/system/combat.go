package system

import "knights-battle/internal/component"

// SurpriseBonus is added to the moving knight's attack when it starts a fight.
const SurpriseBonus = 0.5

// FightResult holds the outcome of one fight.
type FightResult struct {
	Winner  *component.Knight
	Loser   *component.Knight
	Dropped *component.Item // the loser's item, now lying on the fight cell
}

// Fight resolves a fight started by attacker against defender.
// The attacker wins only when attack+SurpriseBonus strictly exceeds the
// defender's defence; ties go to the defender. The loser dies.
func Fight(attacker, defender *component.Knight) FightResult {
	if attacker.Attack()+SurpriseBonus > defender.Defence() {
		return FightResult{Winner: attacker, Loser: defender, Dropped: defender.Die()}
	}
	return FightResult{Winner: defender, Loser: attacker, Dropped: attacker.Die()}
}
