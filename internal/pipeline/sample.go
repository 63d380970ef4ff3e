package pipeline

import "github.com/jonathan/tradepath/internal/types"

// sampleSkills and sampleAnswers describe a career changer from software
// development. They are used when an analysis has no trade or no skills.
var sampleSkills = []string{
	"JavaScript", "React", "Node.js", "Python", "Data Analysis",
	"Project Management", "Communication", "Problem Solving",
}

var sampleAnswers = types.QuestionAnswers{
	Motivation:     "Career change for better opportunities",
	HandsOn:        "love",
	PhysicalWork:   "comfortable",
	ProblemSolving: "enjoy",
	Availability:   "full-time",
}

// SampleRequest returns the sample profile as an analysis request.
func SampleRequest() types.AnalysisRequest {
	return types.AnalysisRequest{
		Trade:   types.TradeElectrician,
		Skills:  append([]string(nil), sampleSkills...),
		Answers: sampleAnswers,
	}
}
