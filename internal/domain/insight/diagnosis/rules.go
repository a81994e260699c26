package diagnosis

// Thresholds drives the rule battery. Percentile cutoffs are top-percentiles
// (0 = best); multipliers are relative to the population average.
type Thresholds struct {
	ReachTopPct       int
	ReachExcellentPct int
	ReachPoorPct      int

	EngagementHigh float64
	EngagementLow  float64
	SaveHigh       float64
	SaveLow        float64
	ShareHigh      float64
	ShareLow       float64
	CommentsHigh   float64

	HookReachMaxPct  int // high reach...
	HookEngMinPct    int // ...but weak engagement
	LoyalReachMinPct int // weak reach...
	LoyalEngMaxPct   int // ...but strong engagement

	SummaryPct      int
	SummaryMinCount int
}

// Rules are the fixed thresholds of the diagnosis battery
var Rules = Thresholds{
	ReachTopPct:       5,
	ReachExcellentPct: 20,
	ReachPoorPct:      70,

	EngagementHigh: 2,
	EngagementLow:  0.5,
	SaveHigh:       2,
	SaveLow:        0.3,
	ShareHigh:      2,
	ShareLow:       0.3,
	CommentsHigh:   3,

	HookReachMaxPct:  20,
	HookEngMinPct:    60,
	LoyalReachMinPct: 60,
	LoyalEngMaxPct:   20,

	SummaryPct:      30,
	SummaryMinCount: 3,
}

// Diagnosis entry codes
const (
	CodeReachTop               = "reach_top"
	CodeReachExcellent         = "reach_excellent"
	CodeReachPoor              = "reach_poor"
	CodeEngagementOutstanding  = "engagement_outstanding"
	CodeEngagementPoor         = "engagement_poor"
	CodeSaveHigh               = "save_high"
	CodeSaveLow                = "save_low"
	CodeShareHigh              = "share_high"
	CodeShareLow               = "share_low"
	CodeReachWithoutEngagement = "reach_without_engagement"
	CodeEngagedUnderexposed    = "engaged_underexposed"
	CodeCommentsHigh           = "comments_high"
	CodeOverallExcellent       = "overall_excellent"
	CodeAverage                = "average"
)
