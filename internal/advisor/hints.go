package advisor

import "github.com/solardome/strategy-explorer/internal/rubric"

// Hints use a three-band split, unlike the conflict rules: Learning and
// Developing share the middle band and only Mastering counts as high.
type hintSet struct {
	Low  string
	Mid  string
	High string
}

var hints = map[string]hintSet{
	"Governance Structure": {
		Low:  "At Beginning/Emerging, stronger central coordination usually works best before moving to federated models.",
		Mid:  "At Learning/Developing, you can gradually federate – keep common standards and shared services.",
		High: "At Mastering, federation can unlock autonomy – but guard against fragmentation with shared guardrails.",
	},
	"Delivery Mode": {
		Low:  "Favour incremental delivery to build confidence and reduce risk – avoid a single big-bang change.",
		Mid:  "Blend incremental delivery with a few larger change packages where foundations are solid.",
		High: "At Mastering, big-bang change is possible – but only with strong programme discipline and clear benefits.",
	},
	"Access Philosophy": {
		Low:  "Start with role-based access to a small number of trusted datasets before opening up more widely.",
		Mid:  "Broaden access with good catalogue/search – keep tight controls around sensitive domains.",
		High: "Push democratisation further – but make sure data protection and audit trails stay robust.",
	},
	"Decision Model": {
		Low:  "Data-informed decisions with clear human oversight are safest while skills and quality are still building.",
		Mid:  "Increase automation in low-risk areas – keep humans in the loop for high-impact decisions.",
		High: "Mastering orgs can rely more on data-driven decisions – but need strong monitoring and fallback plans.",
	},
	"Motivation": {
		Low:  "Keep compliance at the core while you pilot innovation in tightly scoped sandboxes.",
		Mid:  "Balance compliance and innovation – use proof-of-concepts to justify broader change.",
		High: "At Mastering, innovation and compliance can reinforce each other via strong governance by design.",
	},
	"Ambition": {
		Low:  "Focus on essentials – data quality, governance, core platforms – before promising transformational change.",
		Mid:  "You can mix foundational work with some transformational strands where benefits are clear.",
		High: "Aim for transformational impact – but keep benefits and operating model changes clearly articulated.",
	},
	"Coverage": {
		Low:  "Use a few high-impact use-cases to prove value while you build broader capabilities.",
		Mid:  "Begin to spread capabilities horizontally to avoid islands of excellence.",
		High: "Horizontal coverage makes sense – but choose a few flagship use-cases to anchor the narrative.",
	},
	"Orientation": {
		Low:  "Platform and tooling investments will dominate early – link them clearly to outcomes.",
		Mid:  "Balance platform work with visible value – avoid tech for tech's sake.",
		High: "Keep value firmly in the lead, with platforms treated as enablers rather than ends.",
	},
	"Adaptability": {
		Low:  "Keep a stable core with a small living layer – too much churn can confuse people.",
		Mid:  "Treat the strategy as living – schedule periodic reviews and small course corrections.",
		High: "Mastering orgs can iterate often – just make sure changes are well-governed and communicated.",
	},
	"Abstraction Level": {
		Low:  "Keep the strategy concise and vision-led, but quickly translate into practical roadmaps and controls.",
		Mid:  "Balance vision with enough logical detail to guide delivery teams.",
		High: "You can afford a more detailed logical/physical description – but avoid over-specifying too early.",
	},
}

// Hint returns readiness-appropriate guidance for one axis, or "" for an
// unknown axis.
func Hint(axis string, level rubric.Level) string {
	set, ok := hints[axis]
	if !ok {
		return ""
	}
	switch level {
	case rubric.Beginning, rubric.Emerging:
		return set.Low
	case rubric.Learning, rubric.Developing:
		return set.Mid
	case rubric.Mastering:
		return set.High
	}
	return ""
}
