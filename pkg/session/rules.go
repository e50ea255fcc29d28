package session

import "fmt"

// BonusCheck selects when the streak bonus divisibility test runs relative
// to the streak increment of the same call.
type BonusCheck string

const (
	// BonusBeforeIncrement tests the streak value held before the current
	// use is counted. The first use of a session therefore earns the bonus,
	// followed by every StreakLength-th use after it.
	BonusBeforeIncrement BonusCheck = "before_increment"
	// BonusAfterIncrement tests the streak after counting the current use,
	// so the bonus lands on streak StreakLength, 2*StreakLength, ...
	BonusAfterIncrement BonusCheck = "after_increment"
)

// Rules are the scoring constants of a session.
type Rules struct {
	PointsPerLevel int        `yaml:"points_per_level"`
	StreakLength   int        `yaml:"streak_length"`
	StreakBonus    int        `yaml:"streak_bonus"`
	BonusCheck     BonusCheck `yaml:"bonus_check"`
}

// DefaultRules returns the standard scoring: a level every 100 points and a
// 20 point bonus every third use, checked before the increment.
func DefaultRules() Rules {
	return Rules{
		PointsPerLevel: 100,
		StreakLength:   3,
		StreakBonus:    20,
		BonusCheck:     BonusBeforeIncrement,
	}
}

// WithDefaults returns r with zero fields replaced by DefaultRules values.
// StreakBonus is left as is: zero turns the bonus off.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if r.PointsPerLevel == 0 {
		r.PointsPerLevel = d.PointsPerLevel
	}
	if r.StreakLength == 0 {
		r.StreakLength = d.StreakLength
	}
	if r.BonusCheck == "" {
		r.BonusCheck = d.BonusCheck
	}
	return r
}

// Validate checks that the rules can drive a session.
func (r Rules) Validate() error {
	if r.PointsPerLevel <= 0 {
		return fmt.Errorf("session: rules: points_per_level must be positive, got %d", r.PointsPerLevel)
	}
	if r.StreakLength <= 0 {
		return fmt.Errorf("session: rules: streak_length must be positive, got %d", r.StreakLength)
	}
	if r.StreakBonus < 0 {
		return fmt.Errorf("session: rules: streak_bonus must not be negative, got %d", r.StreakBonus)
	}
	switch r.BonusCheck {
	case BonusBeforeIncrement, BonusAfterIncrement:
	default:
		return fmt.Errorf("session: rules: unknown bonus_check %q", r.BonusCheck)
	}
	return nil
}

func (r Rules) bonusDue(streakBefore int) bool {
	if r.StreakBonus == 0 {
		return false
	}
	streak := streakBefore
	if r.BonusCheck == BonusAfterIncrement {
		streak++
	}
	return streak%r.StreakLength == 0
}
