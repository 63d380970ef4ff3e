package ranking

import (
	"strings"
	"testing"

	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDescribe_WindowAroundKeyword(t *testing.T) {
	seg := segmentAt(t, transcript.CircuitDesign(), 225)

	got := Describe(seg, []string{"calculate"})

	idx := strings.Index(seg.Text, "calculate")
	assert.Equal(t, seg.Text[idx-50:idx+50]+"...", got)
}

func TestDescribe_WindowClampedAtStart(t *testing.T) {
	seg := types.TranscriptSegment{Text: "Voltage is pressure."}

	assert.Equal(t, "Voltage is pressure....", Describe(seg, []string{"voltage"}))
}

func TestDescribe_FallsBackToPreview(t *testing.T) {
	seg := segmentAt(t, transcript.CircuitDesign(), 75)

	got := Describe(seg, []string{"nothing"})

	assert.Equal(t, seg.Text[:100]+"...", got)
}

func TestDescribe_MultibyteText(t *testing.T) {
	seg := types.TranscriptSegment{Text: strings.Repeat("×", 120) + " power"}

	got := Describe(seg, []string{"power"})

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 55, len([]rune(strings.TrimSuffix(got, "..."))))
}

func TestContext(t *testing.T) {
	tr := transcript.CircuitDesign()

	assert.Equal(t, "Safety and precautions", Context(segmentAt(t, tr, 75)))
	assert.Equal(t, "Mathematical calculations", Context(segmentAt(t, tr, 125)))
	assert.Equal(t, "Hands-on demonstration", Context(types.TranscriptSegment{Topics: []string{"Practical"}}))
	assert.Equal(t, "Theoretical concepts", Context(types.TranscriptSegment{Topics: []string{"theory"}}))
	assert.Equal(t, "Problem solving", Context(types.TranscriptSegment{Topics: []string{"troubleshooting"}}))
	assert.Equal(t, "Circuit components", Context(types.TranscriptSegment{Topics: []string{"components"}}))
	assert.Equal(t, DefaultContext, Context(types.TranscriptSegment{Topics: []string{"power"}}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "××", Truncate("×××", 2))
}
