package constants

// Tier is the subscription level that gates analysis depth.
type Tier string

// Stable values (embedded in prompts and stored on records).
const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// TierForPremium maps the user's premium flag to a tier.
func TierForPremium(isPremium bool) Tier {
	if isPremium {
		return TierPremium
	}
	return TierFree
}
