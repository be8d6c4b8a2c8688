package graph

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/logos/internal/pipeline"
	"github.com/aretw0/logos/pkg/domain"
)

// Overlay marks stages to highlight on the chart.
type Overlay struct {
	// Focus is drawn with the "current" style. Empty means none.
	Focus domain.Stage
}

// GenerateMermaid produces a Mermaid flowchart of one pipeline run.
// Each stage becomes a node labelled with its output Vector:
// - Ingest: ((Circle)), the run starts from raw text
// - Detect: {{Hexagon}}, it forks into three measures
// - Certify: [/Parallelogram/], the emitted seal
// - Default: [Rectangle]
// Stages whose output is NaN or infinite get the nonfinite class.
func GenerateMermaid(trace domain.Trace, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	geo := trace.Geometry
	values := map[domain.Stage]string{
		domain.StageIngest:    pipeline.FormatFixed(trace.Mass, domain.InputMassPrecision),
		domain.StageStabilize: pipeline.FormatFixed(trace.Stabilized, 4),
		domain.StageDetect: fmt.Sprintf("△ %s <br/> ○ %s <br/> ─ %s",
			pipeline.FormatFixed(geo.Triangle, 4),
			pipeline.FormatFixed(geo.Circle, 4),
			pipeline.FormatFixed(geo.Linear, 4)),
		domain.StagePersist: pipeline.FormatFixed(trace.Persisted, 4),
		domain.StageAlign:   pipeline.FormatFixed(trace.Aligned, 4),
		domain.StageCertify: pipeline.FormatFixed(trace.Seal, domain.SealPrecision),
	}
	raw := map[domain.Stage]float64{
		domain.StageIngest:    trace.Mass,
		domain.StageStabilize: trace.Stabilized,
		domain.StageDetect:    geo.Triangle + geo.Circle + geo.Linear,
		domain.StagePersist:   trace.Persisted,
		domain.StageAlign:     trace.Aligned,
		domain.StageCertify:   trace.Seal,
	}

	for _, stage := range domain.Stages {
		opener, closer := "[", "]"
		switch stage {
		case domain.StageIngest:
			opener, closer = "((", "))"
		case domain.StageDetect:
			opener, closer = "{{", "}}"
		case domain.StageCertify:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> %s\"%s\n", stage, opener, stage, values[stage], closer))
	}

	for i := 1; i < len(domain.Stages); i++ {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", domain.Stages[i-1], domain.Stages[i]))
	}
	// Persist also consumes the Stabilized vector directly.
	sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", domain.StageStabilize, domain.StagePersist))

	var broken []string
	for _, stage := range domain.Stages {
		v := raw[stage]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			broken = append(broken, string(stage))
		}
	}

	if len(broken) > 0 || (overlay != nil && overlay.Focus != "") {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both light and dark themes
		sb.WriteString("    classDef nonfinite fill:#ffebee,stroke:#b71c1c,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, id := range broken {
			sb.WriteString(fmt.Sprintf("    class %s nonfinite;\n", id))
		}
		if overlay != nil && overlay.Focus != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", overlay.Focus))
		}
	}

	return sb.String()
}
