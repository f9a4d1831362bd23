package progress

import "github.com/limbo/rehabit/pkg/entity"

const (
	// CompletionXP is awarded for completing a habit on a day and taken back on uncompletion.
	CompletionXP = 10
	XPPerLevel   = 100
)

func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// ApplyXP adds delta to xp, never going below zero.
func ApplyXP(xp, delta int) int {
	if xp+delta < 0 {
		return 0
	}
	return xp + delta
}

func LevelUp(oldXP, newXP int) bool {
	return Level(newXP) > Level(oldXP)
}

// ProgressInLevel returns XP gathered inside the current level and XP left to the next one.
func ProgressInLevel(xp int) (into, toNext int) {
	if xp < 0 {
		xp = 0
	}
	into = xp % XPPerLevel
	return into, XPPerLevel - into
}

func Change(oldXP, newXP int) entity.XPChange {
	return entity.XPChange{
		OldXP:     oldXP,
		NewXP:     newXP,
		OldLevel:  Level(oldXP),
		NewLevel:  Level(newXP),
		LeveledUp: LevelUp(oldXP, newXP),
	}
}
