package inspect

// Report packages a comparison for rendering.
type Report struct {
	Tool     string  `json:"tool"`
	LocatorA string  `json:"locatorA"`
	LocatorB string  `json:"locatorB"`
	Mode     Mode    `json:"mode"`
	Summary  Summary `json:"summary"`
	Entries  []Entry `json:"entries"`
}

// Summary counts entries by outcome.
type Summary struct {
	Total   int `json:"total"`
	Changed int `json:"changed"`
}

// BuildReport assembles a Report from a finished comparison.
func BuildReport(locatorA, locatorB string, mode Mode, entries []Entry) *Report {
	summary := Summary{Total: len(entries)}
	for _, e := range entries {
		if e.Changed {
			summary.Changed++
		}
	}
	return &Report{
		Tool:     "confstack",
		LocatorA: locatorA,
		LocatorB: locatorB,
		Mode:     mode,
		Summary:  summary,
		Entries:  entries,
	}
}
