package diagnosis

import (
	"fmt"
	"strings"

	"github.com/vadim/neo-insights/internal/domain/insight/aggregate"
	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// population holds the distributions and averages a post is compared against
type population struct {
	reach, engRate, saves, shares []float64

	avgReach, avgEng, avgSaveRate, avgShareRate, avgComments float64
}

func newPopulation(posts []entity.Post) population {
	return population{
		reach:   aggregate.Present(posts, entity.MetricReach),
		engRate: aggregate.Present(posts, entity.MetricEngagementRate),
		saves:   aggregate.Present(posts, entity.MetricSaves),
		shares:  aggregate.Present(posts, entity.MetricShares),

		avgReach:     aggregate.Summarize(posts, entity.MetricReach).Average,
		avgEng:       aggregate.Summarize(posts, entity.MetricEngagementRate).Average,
		avgSaveRate:  aggregate.Summarize(posts, entity.MetricSaveRate).Average,
		avgShareRate: aggregate.Summarize(posts, entity.MetricShareRate).Average,
		avgComments:  aggregate.Summarize(posts, entity.MetricComments).Average,
	}
}

// Diagnose positions post within population (already scoped by the caller)
// and runs the rule battery. Rules are independent; the overall summary is
// prepended and the average fallback is only emitted when nothing else fired.
func Diagnose(post entity.Post, posts []entity.Post) entity.DiagnosisResult {
	pop := newPopulation(posts)
	r := Rules

	reach, _ := post.Value(entity.MetricReach)
	eng, _ := post.Value(entity.MetricEngagementRate)
	saves, _ := post.Value(entity.MetricSaves)
	shares, _ := post.Value(entity.MetricShares)

	res := entity.DiagnosisResult{
		PostID:   post.ID,
		ReachPct: TopPercentile(reach, pop.reach),
		EngPct:   TopPercentile(eng, pop.engRate),
		SavePct:  TopPercentile(saves, pop.saves),
		SharePct: TopPercentile(shares, pop.shares),
	}

	var entries []entity.DiagnosisEntry
	add := func(code string, kind entity.DiagnosisKind, label, text string) {
		entries = append(entries, entity.DiagnosisEntry{Code: code, Kind: kind, Label: label, Text: text})
	}

	switch {
	case res.ReachPct <= r.ReachTopPct:
		add(CodeReachTop, entity.DiagnosisGood, "Top-tier reach",
			fmt.Sprintf("Reach %.0f is in the top %d%% (%.1fx the average). The algorithm pushed this post hard.",
				reach, res.ReachPct, ratio(reach, pop.avgReach)))
	case res.ReachPct <= r.ReachExcellentPct:
		add(CodeReachExcellent, entity.DiagnosisGood, "Excellent reach",
			fmt.Sprintf("Reach %.0f is in the top %d%% (average %.0f). Likely surfaced on Explore.",
				reach, res.ReachPct, pop.avgReach))
	case res.ReachPct >= r.ReachPoorPct:
		add(CodeReachPoor, entity.DiagnosisBad, "Insufficient reach",
			fmt.Sprintf("Reach %.0f is in the bottom %d%% (average %.0f). Review hashtags, the hook image and the posting time.",
				reach, 100-res.ReachPct, pop.avgReach))
	}

	if post.EngagementRate != nil {
		switch {
		case eng >= pop.avgEng*r.EngagementHigh:
			add(CodeEngagementOutstanding, entity.DiagnosisGood, "Outstanding engagement",
				fmt.Sprintf("Engagement rate %.1f%% is %.1fx the average (%.1f%%). It resonated strongly with followers.",
					eng, ratio(eng, pop.avgEng), pop.avgEng))
		case eng < pop.avgEng*r.EngagementLow:
			add(CodeEngagementPoor, entity.DiagnosisBad, "Poor engagement",
				fmt.Sprintf("Engagement rate %.1f%% is under half the average (%.1f%%). Add a call to action or a question in the caption.",
					eng, pop.avgEng))
		}
	}

	if post.SaveRate != nil {
		v := *post.SaveRate
		switch {
		case v >= pop.avgSaveRate*r.SaveHigh:
			add(CodeSaveHigh, entity.DiagnosisGood, "High save value",
				fmt.Sprintf("Save rate %.1f%% is %.1fx the average (%.1f%%). Useful, reference-worthy content; make more of it.",
					v, ratio(v, pop.avgSaveRate), pop.avgSaveRate))
		case v < pop.avgSaveRate*r.SaveLow:
			add(CodeSaveLow, entity.DiagnosisWarn, "Low save rate",
				fmt.Sprintf("Save rate %.1f%% is well below the average (%.1f%%). Add summaries, tips or checklists worth saving.",
					v, pop.avgSaveRate))
		}
	}

	if post.ShareRate != nil {
		v := *post.ShareRate
		switch {
		case v >= pop.avgShareRate*r.ShareHigh:
			add(CodeShareHigh, entity.DiagnosisGood, "High share rate (viral)",
				fmt.Sprintf("Share rate %.1f%% is %.1fx the average (%.1f%%). Strong viral potential.",
					v, ratio(v, pop.avgShareRate), pop.avgShareRate))
		case v < pop.avgShareRate*r.ShareLow:
			add(CodeShareLow, entity.DiagnosisWarn, "Low share rate",
				fmt.Sprintf("Share rate %.1f%%. Add a share prompt such as \"tag a friend\".", v))
		}
	}

	if res.ReachPct <= r.HookReachMaxPct && res.EngPct >= r.HookEngMinPct {
		add(CodeReachWithoutEngagement, entity.DiagnosisWarn, "Reach without engagement",
			"Many people saw it but few reacted. Strengthen the caption and CTA or ask a question to invite comments.")
	}

	if res.ReachPct >= r.LoyalReachMinPct && res.EngPct <= r.LoyalEngMaxPct {
		add(CodeEngagedUnderexposed, entity.DiagnosisWarn, "Engaged but under-exposed",
			"Existing followers responded well but it did not reach new people. Try trending hashtags or the reels format.")
	}

	if post.Comments != nil {
		c := float64(*post.Comments)
		if c >= pop.avgComments*r.CommentsHigh {
			add(CodeCommentsHigh, entity.DiagnosisGood, "High comment activity",
				fmt.Sprintf("%.0f comments, %.1fx the average (%.0f). An active conversation.",
					c, ratio(c, pop.avgComments), pop.avgComments))
		}
	}

	var strong []string
	for _, s := range []struct {
		name string
		pct  int
	}{
		{"reach", res.ReachPct},
		{"engagement", res.EngPct},
		{"saves", res.SavePct},
		{"shares", res.SharePct},
	} {
		if s.pct <= r.SummaryPct {
			strong = append(strong, s.name)
		}
	}
	if len(strong) >= r.SummaryMinCount {
		summary := entity.DiagnosisEntry{
			Code:  CodeOverallExcellent,
			Kind:  entity.DiagnosisGood,
			Label: "Overall excellent post",
			Text: fmt.Sprintf("%s are all near the top. Use this topic and format as a reference for similar content.",
				strings.Join(strong, ", ")),
		}
		entries = append([]entity.DiagnosisEntry{summary}, entries...)
	}

	if len(entries) == 0 {
		add(CodeAverage, entity.DiagnosisWarn, "Average performance",
			"Most metrics sit within the normal range. A stable post without standout strengths or weaknesses.")
	}

	res.Entries = entries
	return res
}

func ratio(v, avg float64) float64 {
	if avg == 0 {
		return 0
	}
	return v / avg
}
