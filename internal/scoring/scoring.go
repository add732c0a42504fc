// Package scoring holds the pure settlement math: the precision score,
// the streak rules, the consumable modifiers and the payout composition.
// Nothing in here touches the database.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"hugolate/internal/models"
)

const (
	// BasePoints is the perfect score for an exact guess.
	BasePoints = 1000

	// DecayK is tuned so a 5-minute error yields ≈200 points:
	// 1000 * e^(-0.32188*5) ≈ 200. Do not change without migrating
	// historical expectations.
	DecayK = 0.32188

	// noiseFloor cuts scores below 5 down to 0 so wildly wrong guesses
	// earn nothing instead of fractional crumbs.
	noiseFloor = 5

	// BountyAmount is the flat bonus for outscoring the wealth leader
	// on the same course.
	BountyAmount = 5000

	// StreakGainThreshold extends the streak, StreakLossThreshold
	// breaks it; scores in between leave it untouched.
	StreakGainThreshold = 700
	StreakLossThreshold = 300
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ParseClock converts an "HH:mm" 24-hour string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	m := clockPattern.FindStringSubmatch(clock)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:mm", clock)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min, nil
}

// FormatClock converts minutes since midnight back to an "HH:mm" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateHugoScore converts a time-guess error into points in [0, 1000].
// Both inputs are minutes since midnight. The difference is linear; a
// guess across midnight is not wrapped.
func CalculateHugoScore(targetMinutes, guessedMinutes int) int {
	diff := targetMinutes - guessedMinutes
	if diff < 0 {
		diff = -diff
	}

	if diff == 0 {
		return BasePoints // perfect score, skip the float path entirely
	}

	score := BasePoints * math.Exp(-DecayK*float64(diff))

	if score < noiseFloor {
		return 0
	}

	return int(math.Round(score))
}

// StreakMultiplier is a step function of the streak the bettor carried
// into the resolution, before this resolution updates it.
func StreakMultiplier(currentStreak int) decimal.Decimal {
	switch {
	case currentStreak >= 10:
		return decimal.NewFromFloat(2.0)
	case currentStreak >= 5:
		return decimal.NewFromFloat(1.5)
	case currentStreak >= 3:
		return decimal.NewFromFloat(1.2)
	default:
		return decimal.NewFromInt(1)
	}
}

// RawPayout computes round(baseScore/100 * amount * streakMultiplier).
// A base score of 100 is break-even; 1000 returns ten times the stake.
func RawPayout(baseScore int, amount int64, currentStreak int) int64 {
	return decimal.NewFromInt(int64(baseScore)).
		Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromInt(amount)).
		Mul(StreakMultiplier(currentStreak)).
		Round(0).
		IntPart()
}

// ApplyItemModifier turns the raw payout into the final payout according
// to the consumable applied at bet time. Tags with no payout semantics
// (MAGNIFIER included) leave the payout unchanged.
func ApplyItemModifier(rawPayout, amount int64, item *models.ItemType) int64 {
	if item == nil {
		return rawPayout
	}

	switch *item {
	case models.ItemWarrant:
		return rawPayout * 2
	case models.ItemVest:
		if rawPayout >= amount {
			return rawPayout
		}
		shortfall := amount - rawPayout
		half := decimal.NewFromInt(shortfall).
			Div(decimal.NewFromInt(2)).
			Round(0).
			IntPart()
		return rawPayout + half
	default:
		return rawPayout
	}
}

// NextStreak derives the streak after a resolution from the streak before
// it and the base score of the resolved bet. A mediocre score neither
// extends nor breaks the streak.
func NextStreak(currentStreak, baseScore int) int {
	switch {
	case baseScore >= StreakGainThreshold:
		return currentStreak + 1
	case baseScore < StreakLossThreshold:
		return 0
	default:
		return currentStreak
	}
}
