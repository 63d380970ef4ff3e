// Package resume extracts skills from uploaded resume documents.
package resume

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jonathan/tradepath/internal/random"
)

// AllowedTypes are the accepted resume MIME types.
var AllowedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Document is an uploaded resume.
type Document struct {
	Name string
	Data []byte
}

// ReadDocument loads a document from disk.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &ExtractionError{Document: path, Message: "failed to read document", Cause: err}
	}
	return Document{Name: filepath.Base(path), Data: data}, nil
}

// Extractor turns a resume into a list of skill names.
type Extractor interface {
	Extract(ctx context.Context, doc Document) ([]string, error)
}

// cannedSkills is the pool the mock extractor samples from.
var cannedSkills = []string{
	"Problem-solving",
	"Attention to detail",
	"Customer service",
	"Time management",
	"Communication skills",
	"Project management",
	"Quality control",
	"Mathematical skills",
	"Technical documentation",
	"Safety awareness",
	"Manual dexterity",
}

const (
	minExtractedSkills = 6
	maxExtractedSkills = 10
)

// MockExtractor simulates resume analysis: it checks the document type,
// waits a randomized delay and returns a random subset of canned skills.
// The document content beyond its type is ignored.
type MockExtractor struct {
	Rand     random.Source
	MinDelay time.Duration
	MaxDelay time.Duration
	Logger   *slog.Logger
}

// NewMockExtractor returns a mock with the standard 2-3 second delay.
func NewMockExtractor(src random.Source) *MockExtractor {
	return &MockExtractor{
		Rand:     src,
		MinDelay: 2 * time.Second,
		MaxDelay: 3 * time.Second,
		Logger:   slog.Default(),
	}
}

// DetectType returns the detected MIME type and whether it is accepted.
func DetectType(data []byte) (string, bool) {
	detected := mimetype.Detect(data)
	for _, allowed := range AllowedTypes {
		if detected.Is(allowed) {
			return detected.String(), true
		}
	}
	return detected.String(), false
}

// Extract implements Extractor.
func (m *MockExtractor) Extract(ctx context.Context, doc Document) ([]string, error) {
	if len(doc.Data) == 0 {
		return nil, &ExtractionError{Document: doc.Name, Message: "document is empty"}
	}

	mimeType, ok := DetectType(doc.Data)
	if !ok {
		return nil, &ExtractionError{
			Document: doc.Name,
			Message:  fmt.Sprintf("got %s, please upload a PDF or Word document", mimeType),
			Cause:    ErrUnsupportedType,
		}
	}

	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delay := m.delay()
	logger.Info("analyzing resume",
		slog.String("document", doc.Name),
		slog.String("mime_type", mimeType),
		slog.Duration("delay", delay))

	if err := wait(ctx, delay); err != nil {
		return nil, &ExtractionError{Document: doc.Name, Message: "analysis cancelled", Cause: err}
	}

	skills := make([]string, len(cannedSkills))
	copy(skills, cannedSkills)
	m.Rand.Shuffle(len(skills), func(i, j int) { skills[i], skills[j] = skills[j], skills[i] })
	count := minExtractedSkills + m.Rand.IntN(maxExtractedSkills-minExtractedSkills+1)

	logger.Info("extracted skills", slog.String("document", doc.Name), slog.Int("count", count))
	return skills[:count], nil
}

func (m *MockExtractor) delay() time.Duration {
	if m.MaxDelay <= m.MinDelay {
		return max(m.MinDelay, 0)
	}
	spread := int((m.MaxDelay - m.MinDelay) / time.Millisecond)
	return m.MinDelay + time.Duration(m.Rand.IntN(spread+1))*time.Millisecond
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
