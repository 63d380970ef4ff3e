// Package transcript holds the static, timestamped training-video
// transcripts the video assistant searches.
package transcript

import "github.com/jonathan/tradepath/internal/types"

// CircuitDesign returns the keyword-tagged "Circuit Design Fundamentals"
// sample answered by the video assistant.
func CircuitDesign() *types.Transcript {
	return &types.Transcript{
		VideoID:  CircuitDesignID,
		Title:    "Circuit Design Fundamentals",
		Duration: 600,
		Segments: []types.TranscriptSegment{
			{
				StartTime: 75,
				EndTime:   95,
				Text:      "Safety is paramount when working with electrical circuits. Always wear safety glasses, use insulated tools, and ensure the circuit is de-energized before making any connections. Keep a first aid kit nearby and never work alone on high-voltage systems.",
				Keywords:  []string{"safety", "glasses", "insulated", "tools", "de-energized", "first-aid"},
				Topics:    []string{"safety", "precautions", "equipment"},
			},
			{
				StartTime: 125,
				EndTime:   145,
				Text:      "Ohm's law is the foundation of circuit analysis. It states that voltage equals current times resistance, or V = I × R. This fundamental relationship helps us understand how electricity flows through components and how to calculate values in our circuits.",
				Keywords:  []string{"ohm", "law", "voltage", "current", "resistance", "calculate"},
				Topics:    []string{"theory", "calculations", "fundamentals"},
			},
			{
				StartTime: 225,
				EndTime:   245,
				Text:      "In parallel circuits, voltage remains constant across all branches, but current divides. To calculate the total current, we add the individual branch currents. The voltage across each parallel branch equals the source voltage.",
				Keywords:  []string{"parallel", "voltage", "constant", "current", "divides", "branches"},
				Topics:    []string{"circuit-types", "calculations", "parallel"},
			},
			{
				StartTime: 320,
				EndTime:   340,
				Text:      "When analyzing parallel circuits, remember that each path provides an independent route for current flow. The total resistance is always less than the smallest individual resistor. Use the reciprocal formula: 1/Rt = 1/R1 + 1/R2 + 1/R3.",
				Keywords:  []string{"parallel", "resistance", "reciprocal", "formula", "current", "path"},
				Topics:    []string{"calculations", "resistance", "parallel"},
			},
			{
				StartTime: 390,
				EndTime:   410,
				Text:      "Practical application of Ohm's law: If you have a 12-volt battery and a 4-ohm resistor, the current flowing through the circuit will be 3 amperes. This calculation is essential for component selection and circuit design.",
				Keywords:  []string{"practical", "ohm", "12-volt", "battery", "4-ohm", "resistor", "3-amperes"},
				Topics:    []string{"practical", "calculations", "examples"},
			},
			{
				StartTime: 525,
				EndTime:   545,
				Text:      "Advanced Ohm's law applications include power calculations. Power equals voltage times current (P = V × I), or voltage squared divided by resistance (P = V²/R). Understanding power is crucial for component ratings and heat dissipation.",
				Keywords:  []string{"power", "calculations", "voltage", "current", "resistance", "heat", "dissipation"},
				Topics:    []string{"advanced", "power", "calculations"},
			},
		},
	}
}

// CircuitGuide returns the 30-minute "Complete Guide to Circuit Design for
// Electricians". Its segments carry topics but no keywords; each segment
// ends where the next begins and the last ends at the video duration.
func CircuitGuide() *types.Transcript {
	segments := make([]types.TranscriptSegment, len(circuitGuideSegments))
	for i, s := range circuitGuideSegments {
		end := float64(circuitGuideDuration)
		if i+1 < len(circuitGuideSegments) {
			end = circuitGuideSegments[i+1].start
		}
		topics := make([]string, len(s.topics))
		copy(topics, s.topics)
		segments[i] = types.TranscriptSegment{
			StartTime: s.start,
			EndTime:   end,
			Text:      s.text,
			Keywords:  []string{},
			Topics:    topics,
		}
	}

	return &types.Transcript{
		VideoID:  CircuitGuideID,
		Title:    "Complete Guide to Circuit Design for Electricians",
		Duration: circuitGuideDuration,
		Segments: segments,
	}
}

// Topics returns up to limit distinct topics in first-seen order.
// A non-positive limit returns all of them.
func Topics(t *types.Transcript, limit int) []string {
	seen := make(map[string]bool)
	topics := make([]string, 0)
	for _, seg := range t.Segments {
		for _, topic := range seg.Topics {
			if seen[topic] {
				continue
			}
			seen[topic] = true
			topics = append(topics, topic)
			if limit > 0 && len(topics) == limit {
				return topics
			}
		}
	}
	return topics
}
