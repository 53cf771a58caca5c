package observ

import (
	"encoding/json"
	"fmt"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/source"
)

type timingPayload struct {
	Kind    string        `json:"kind"`
	Path    string        `json:"path,omitempty"`
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// AppendDiagnostic stores the timer report in bag as an ObsTimings info entry;
// the JSON payload goes into the first note. Returns false when bag is full.
func AppendDiagnostic(bag *diag.Bag, kind, path string, report Report) bool {
	if bag == nil {
		return false
	}
	if kind == "" {
		kind = "analysis"
	}
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", kind, payload.TotalMS)
	if path != "" {
		msg = fmt.Sprintf("%s, %s", msg, path)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	return bag.Add(diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  msg,
		Primary:  source.Span{},
		Notes: []diag.Note{
			{Span: source.Span{}, Msg: string(data)},
		},
	})
}
