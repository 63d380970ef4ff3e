package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/tradepath/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func instantExtractor(src random.Source) *MockExtractor {
	m := NewMockExtractor(src)
	m.MinDelay = 0
	m.MaxDelay = 0
	return m
}

func TestDetectType(t *testing.T) {
	mimeType, ok := DetectType(samplePDF)
	assert.True(t, ok)
	assert.Equal(t, "application/pdf", mimeType)

	_, ok = DetectType([]byte("just some plain text in a file"))
	assert.False(t, ok)

	_, ok = DetectType([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	assert.False(t, ok)
}

func TestMockExtractor_ReturnsSubsetOfCannedSkills(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		skills, err := instantExtractor(random.NewSeeded(seed)).Extract(context.Background(), Document{Name: "cv.pdf", Data: samplePDF})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(skills), 6)
		assert.LessOrEqual(t, len(skills), 10)
		seen := map[string]bool{}
		for _, s := range skills {
			assert.Contains(t, cannedSkills, s)
			assert.False(t, seen[s], "duplicate skill %s", s)
			seen[s] = true
		}
	}
}

func TestMockExtractor_FixedSource(t *testing.T) {
	skills, err := instantExtractor(random.Fixed{Int: 0}).Extract(context.Background(), Document{Name: "cv.pdf", Data: samplePDF})
	require.NoError(t, err)
	assert.Equal(t, cannedSkills[:6], skills)

	skills, err = instantExtractor(random.Fixed{Int: 4}).Extract(context.Background(), Document{Name: "cv.pdf", Data: samplePDF})
	require.NoError(t, err)
	assert.Len(t, skills, 10)
}

func TestMockExtractor_RejectsUnsupportedType(t *testing.T) {
	_, err := instantExtractor(random.Fixed{}).Extract(context.Background(), Document{Name: "notes.txt", Data: []byte("hello world, these are notes")})

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "notes.txt", extractionErr.Document)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestMockExtractor_RejectsEmptyDocument(t *testing.T) {
	_, err := instantExtractor(random.Fixed{}).Extract(context.Background(), Document{Name: "empty.pdf"})

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, err.Error(), "document is empty")
}

func TestMockExtractor_HonorsCancellation(t *testing.T) {
	m := NewMockExtractor(random.Fixed{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := m.Extract(ctx, Document{Name: "cv.pdf", Data: samplePDF})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), time.Second)
}

func TestMockExtractor_Delay(t *testing.T) {
	m := NewMockExtractor(random.Fixed{Int: 500})
	assert.Equal(t, 2500*time.Millisecond, m.delay())

	m = NewMockExtractor(random.Fixed{Int: 100000})
	assert.Equal(t, 3*time.Second, m.delay())
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, samplePDF, 0644))

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", doc.Name)
	assert.Equal(t, samplePDF, doc.Data)

	_, err = ReadDocument(filepath.Join(t.TempDir(), "missing.pdf"))
	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}
