package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/tradepath/internal/resume"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a resume",
	Long:  "Checks that a resume is a PDF or Word document and extracts a list of skills from it.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractOutputFile string
)

// extractOutput is the JSON written by the extract command.
type extractOutput struct {
	Document string   `json:"document"`
	MimeType string   `json:"mime_type"`
	Skills   []string `json:"skills"`
}

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume document (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := extractCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	doc, err := resume.ReadDocument(extractResumeFile)
	if err != nil {
		return err
	}

	skillList, err := newExtractor().Extract(cmd.Context(), doc)
	if err != nil {
		return err
	}

	mimeType, _ := resume.DetectType(doc.Data)
	return writeOutput(extractOutputFile, extractOutput{
		Document: doc.Name,
		MimeType: mimeType,
		Skills:   skillList,
	}, "")
}
