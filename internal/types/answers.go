// Package types provides type definitions for structured data used throughout the tradepath system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Trade identifiers known to the built-in catalog.
const (
	TradePlumber     = "plumber"
	TradeElectrician = "electrician"
)

// QuestionAnswers holds the five free-text questionnaire answers.
// PhysicalWork is formatted as "<1-10> - <explanation>".
type QuestionAnswers struct {
	Motivation     string `json:"motivation"`
	HandsOn        string `json:"hands_on"`
	PhysicalWork   string `json:"physical_work"`
	ProblemSolving string `json:"problem_solving"`
	Availability   string `json:"availability"`
}

// AnalysisRequest is the input document accepted by the score and gaps commands.
type AnalysisRequest struct {
	Trade   string          `json:"trade" validate:"required"`
	Skills  []string        `json:"skills" validate:"dive,required"`
	Answers QuestionAnswers `json:"answers"`
}

// Validate validates the AnalysisRequest using the validator.
// An unknown trade is not a validation error; scoring degrades to zero.
func (r *AnalysisRequest) Validate() error {
	return validate.Struct(r)
}
