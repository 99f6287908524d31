package gap

// Action is a placeholder row for an external action log. Owner, Timeline,
// Metric and Status stay empty for downstream editing.
type Action struct {
	Priority  int    `json:"priority"`
	Axis      string `json:"axis"`
	Direction string `json:"direction"`
	Owner     string `json:"owner"`
	Timeline  string `json:"timeline"`
	Metric    string `json:"metric"`
	Status    string `json:"status"`
}

// SeedActions turns the first topN rows of an already-ranked gap list into
// action placeholders. Input order is trusted; no re-ranking happens here.
func SeedActions(ranked []Row, topN int) []Action {
	if topN > len(ranked) {
		topN = len(ranked)
	}
	actions := []Action{}
	for i := 0; i < topN; i++ {
		r := ranked[i]
		direction := r.Direction
		if r.ChangeNeeded == 0 {
			direction = "no change"
		}
		actions = append(actions, Action{
			Priority:  i + 1,
			Axis:      r.Axis,
			Direction: direction,
		})
	}
	return actions
}
