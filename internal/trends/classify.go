// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package trends

// Label is the single classification outcome assigned to a topic for a
// period A/B comparison.
type Label string

const (
	LabelEmerging        Label = "Emerging in period B"
	LabelAbsent          Label = "Absent in period B"
	LabelStrongSurge     Label = "Strong surge in output and impact"
	LabelGrowingPriority Label = "Growing priority with rising impact"
	LabelOutputSoftening Label = "Output rising, impact softening"
	LabelDeclining       Label = "Declining emphasis"
	LabelImpactLed       Label = "Impact rising faster than output"
	LabelStable          Label = "Stable focus"
)

// SurgeThreshold holds minimum growth ratios for both metrics.
type SurgeThreshold struct {
	Pubs  float64 `json:"pubs" yaml:"pubs" mapstructure:"pubs"`
	Cites float64 `json:"cites" yaml:"cites" mapstructure:"cites"`
}

// ImpactLedThreshold fires when citations grow while output stays flat.
type ImpactLedThreshold struct {
	Cites   float64 `json:"cites" yaml:"cites" mapstructure:"cites"`
	PubsMax float64 `json:"pubsMax" yaml:"pubsMax" mapstructure:"pubsMax"`
}

// SofteningThreshold fires when output grows but citations lag.
type SofteningThreshold struct {
	Pubs     float64 `json:"pubs" yaml:"pubs" mapstructure:"pubs"`
	CitesMax float64 `json:"citesMax" yaml:"citesMax" mapstructure:"citesMax"`
}

// Thresholds parameterizes the classifier rules. Load it once per
// session; the classifier treats it as read-only.
type Thresholds struct {
	StrongSurge     SurgeThreshold     `json:"strongSurge" yaml:"strongSurge" mapstructure:"strongSurge"`
	GrowingPriority SurgeThreshold     `json:"growingPriority" yaml:"growingPriority" mapstructure:"growingPriority"`
	ImpactLed       ImpactLedThreshold `json:"impactLed" yaml:"impactLed" mapstructure:"impactLed"`
	OutputSoftening SofteningThreshold `json:"outputSoftening" yaml:"outputSoftening" mapstructure:"outputSoftening"`
	DeclineDrop     float64            `json:"declineDrop" yaml:"declineDrop" mapstructure:"declineDrop"`
}

// DefaultThresholds returns the built-in classifier parameters. Config
// overrides merge against these leaf by leaf, never wholesale.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongSurge:     SurgeThreshold{Pubs: 2, Cites: 2},
		GrowingPriority: SurgeThreshold{Pubs: 1.5, Cites: 1.2},
		ImpactLed:       ImpactLedThreshold{Cites: 1.5, PubsMax: 1},
		OutputSoftening: SofteningThreshold{Pubs: 1.2, CitesMax: 0.9},
		DeclineDrop:     0.8,
	}
}

// Classify assigns exactly one label to a topic given its period totals.
// The rules are an ordered list and the first match wins: ordering is the
// tie-break policy. In particular the emerging/absent guards must run
// before the ratio rules, because Growth maps (0,0) to 0 and a topic with
// no activity in either period would otherwise read as declining.
func Classify(pubsA, pubsB, citesA, citesB int, th Thresholds) Label {
	pubsGrowth := Growth(pubsA, pubsB)
	citesGrowth := Growth(citesA, citesB)

	rules := []struct {
		match bool
		label Label
	}{
		{pubsA == 0 && pubsB > 0, LabelEmerging},
		{pubsA > 0 && pubsB == 0, LabelAbsent},
		{pubsGrowth >= th.StrongSurge.Pubs && citesGrowth >= th.StrongSurge.Cites, LabelStrongSurge},
		{pubsGrowth >= th.GrowingPriority.Pubs && citesGrowth >= th.GrowingPriority.Cites, LabelGrowingPriority},
		{pubsGrowth >= th.OutputSoftening.Pubs && citesGrowth < th.OutputSoftening.CitesMax, LabelOutputSoftening},
		{pubsGrowth < th.DeclineDrop && citesGrowth < th.DeclineDrop, LabelDeclining},
		{citesGrowth >= th.ImpactLed.Cites && pubsGrowth <= th.ImpactLed.PubsMax, LabelImpactLed},
	}

	for _, r := range rules {
		if r.match {
			return r.label
		}
	}
	return LabelStable
}
