package score

// Tier categorizes a score percentage for summary feedback.
type Tier string

const (
	TierPerfect   Tier = "perfect"   // 100%
	TierExcellent Tier = "excellent" // 90-99%
	TierGood      Tier = "good"      // 80-89%
	TierClose     Tier = "close"     // 70-79%
	TierFailed    Tier = "failed"    // <70%
)

// TierFor maps a score percentage to its tier.
func TierFor(pct float64) Tier {
	switch {
	case pct >= 100:
		return TierPerfect
	case pct >= 90:
		return TierExcellent
	case pct >= 80:
		return TierGood
	case pct >= 70:
		return TierClose
	default:
		return TierFailed
	}
}
