package session

import (
	"sync"
	"testing"
	"time"

	"github.com/jonathan/tradepath/internal/assistant"
	"github.com/jonathan/tradepath/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu         sync.Mutex
	messages   []string
	fromUser   []bool
	timestamps [][]float64
	states     []string
}

func (r *recorder) observer() Observer {
	return Observer{
		OnMessage: func(message string, isUser bool) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.messages = append(r.messages, message)
			r.fromUser = append(r.fromUser, isUser)
		},
		OnTimestamps: func(ts []float64) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.timestamps = append(r.timestamps, ts)
		},
		OnStateChange: func(snap Snapshot) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.states = append(r.states, snap.State)
		},
	}
}

var fastTimings = Timings{
	TypingSpeed:           10 * time.Millisecond,
	ThinkingDelay:         100 * time.Millisecond,
	PauseBetweenQuestions: 300 * time.Millisecond,
}

func newTestSession(t *testing.T, questions []string, rec *recorder) (*Session, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	timings := fastTimings
	opts := Options{Scheduler: sched, Timings: &timings, Questions: questions}
	if rec != nil {
		opts.Observer = rec.observer()
	}
	return New(assistant.NewDefault(random.Fixed{Float: 0.9}), opts), sched
}

func TestNew_UniqueIDs(t *testing.T) {
	a, _ := newTestSession(t, nil, nil)
	b, _ := newTestSession(t, nil, nil)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, StateIdle, a.State())
}

func TestDemo_StepsThroughStates(t *testing.T) {
	rec := &recorder{}
	s, sched := newTestSession(t, []string{"abc"}, rec)

	require.NoError(t, s.StartDemo())
	assert.Equal(t, StateTypingQuestion, s.State())

	sched.Advance(30 * time.Millisecond)
	assert.Equal(t, "abc", s.Snapshot().TypedQuestion)
	assert.Equal(t, StateTypingQuestion, s.State())

	sched.Advance(10 * time.Millisecond)
	assert.Equal(t, StateWaitingForResponse, s.State())
	assert.Equal(t, []string{"abc"}, rec.messages)
	assert.Equal(t, []bool{true}, rec.fromUser)

	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, StateShowingResponse, s.State())
	require.Len(t, rec.messages, 2)
	assert.False(t, rec.fromUser[1])
	assert.Contains(t, rec.messages[1], "Could you be more specific?")
	assert.Empty(t, rec.timestamps)

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, StateIdle, s.State())
	assert.False(t, s.Snapshot().AutoDemo)
	assert.Equal(t, 0, sched.Pending())

	assert.Equal(t, []string{
		"typing_question",
		"waiting_for_response",
		"showing_response",
		"idle",
	}, rec.states)
}

func TestDemo_FullWalkthrough(t *testing.T) {
	rec := &recorder{}
	s, sched := newTestSession(t, nil, rec)

	require.NoError(t, s.StartDemo())
	sched.RunAll(10000)

	assert.Equal(t, StateIdle, s.State())
	assert.Len(t, rec.messages, 8)
	assert.Equal(t, [][]float64{
		{72},
		{225, 320},
		{75},
		{125, 390, 525},
	}, rec.timestamps)
}

func TestDemo_PauseResumeKeepsTypingProgress(t *testing.T) {
	s, sched := newTestSession(t, []string{"abcdef"}, nil)
	require.NoError(t, s.StartDemo())

	sched.Advance(20 * time.Millisecond)
	require.NoError(t, s.Pause())
	assert.Equal(t, StatePaused, s.State())
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(time.Second)
	assert.Equal(t, "ab", s.Snapshot().TypedQuestion)

	require.NoError(t, s.Resume())
	assert.Equal(t, StateTypingQuestion, s.State())
	sched.Advance(10 * time.Millisecond)
	assert.Equal(t, "abc", s.Snapshot().TypedQuestion)
}

func TestDemo_PauseWhileWaiting(t *testing.T) {
	rec := &recorder{}
	s, sched := newTestSession(t, []string{"a"}, rec)
	require.NoError(t, s.StartDemo())
	sched.Advance(20 * time.Millisecond)
	require.Equal(t, StateWaitingForResponse, s.State())

	require.NoError(t, s.Pause())
	sched.Advance(time.Second)
	assert.Len(t, rec.messages, 1)

	require.NoError(t, s.Resume())
	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, StateShowingResponse, s.State())
	assert.Len(t, rec.messages, 2)
}

func TestDemo_PauseResumeErrors(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)

	assert.ErrorIs(t, s.Pause(), ErrNotRunning)
	assert.ErrorIs(t, s.Resume(), ErrNotPaused)

	empty, _ := newTestSession(t, []string{}, nil)
	assert.ErrorIs(t, empty.StartDemo(), ErrNoQuestions)
}

func TestDemo_Stop(t *testing.T) {
	rec := &recorder{}
	s, sched := newTestSession(t, nil, rec)
	require.NoError(t, s.StartDemo())
	sched.Advance(50 * time.Millisecond)

	s.StopDemo()

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, sched.Pending())
	sched.RunAll(100)
	assert.Empty(t, rec.messages)
}

func TestDemo_RestartFromBeginning(t *testing.T) {
	s, sched := newTestSession(t, []string{"a", "b"}, nil)
	require.NoError(t, s.StartDemo())
	sched.Advance(500 * time.Millisecond)
	require.Equal(t, 1, s.Snapshot().QuestionIndex)

	require.NoError(t, s.StartDemo())
	assert.Equal(t, 0, s.Snapshot().QuestionIndex)
	assert.Equal(t, 1, sched.Pending())
}

func TestDemo_RealScheduler(t *testing.T) {
	done := make(chan struct{})
	var once sync.Once
	timings := Timings{TypingSpeed: time.Millisecond, ThinkingDelay: time.Millisecond, PauseBetweenQuestions: time.Millisecond}
	s := New(assistant.NewDefault(random.Fixed{}), Options{
		Timings:   &timings,
		Questions: []string{"abc"},
		Observer: Observer{OnStateChange: func(snap Snapshot) {
			if snap.State == "idle" {
				once.Do(func() { close(done) })
			}
		}},
	})

	require.NoError(t, s.StartDemo())
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("demo did not finish")
	}
	assert.Equal(t, StateIdle, s.State())
}

func TestObserver_MayCallBackIntoSession(t *testing.T) {
	var s *Session
	var seen []string
	s = New(assistant.NewDefault(random.Fixed{}), Options{
		Scheduler: NewManualScheduler(),
		Observer: Observer{OnStateChange: func(Snapshot) {
			seen = append(seen, s.Snapshot().CurrentLearningSkill)
		}},
	})

	s.StartLearning("Circuit Design")

	assert.Equal(t, []string{"Circuit Design"}, seen)
}

func TestLearningProgress(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)

	s.StartLearning("Circuit Design")
	assert.Equal(t, map[string]int{"Circuit Design": 0}, s.Progress())
	assert.Equal(t, "Circuit Design", s.Snapshot().CurrentLearningSkill)

	s.UpdateProgress("Circuit Design", 40)
	s.StartLearning("Circuit Design")
	assert.Equal(t, 40, s.Progress()["Circuit Design"])

	s.UpdateProgress("Circuit Design", 150)
	assert.Equal(t, 100, s.Progress()["Circuit Design"])
	s.UpdateProgress("Circuit Design", -5)
	assert.Equal(t, 0, s.Progress()["Circuit Design"])

	s.CompleteSkill("Circuit Design")
	s.CompleteSkill("Circuit Design")
	assert.Equal(t, []string{"Circuit Design"}, s.CompletedSkills())
	assert.Equal(t, 100, s.Progress()["Circuit Design"])
	assert.Empty(t, s.Snapshot().CurrentLearningSkill)

	progress := s.Progress()
	progress["Circuit Design"] = 1
	assert.Equal(t, 100, s.Progress()["Circuit Design"])
}

func TestReset(t *testing.T) {
	s, sched := newTestSession(t, nil, nil)
	s.CompleteSkill("Wiring Installation")
	s.MarkWatched(75)
	require.NoError(t, s.StartDemo())

	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Empty(t, snap.CompletedSkills)
	assert.Empty(t, snap.LearningProgress)
	assert.Equal(t, 0, sched.Pending())
}

func TestRecommendedSkills(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	skills := s.RecommendedSkills()
	assert.Equal(t, "Circuit Design", skills[0])
	assert.Len(t, skills, 5)
}

func TestAsk_UsesWatchHistory(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(t, nil, rec)

	fresh := s.Ask("Where is the battery example?")
	s.MarkWatched(390)
	s.MarkWatched(390)
	seen := s.Ask("Where is the battery example?")

	require.Len(t, fresh.Timestamps, 1)
	require.Len(t, seen.Timestamps, 1)
	assert.InDelta(t, 1.0, fresh.Timestamps[0].RelevanceScore, 1e-9)
	assert.InDelta(t, 0.9, seen.Timestamps[0].RelevanceScore, 1e-9)
	assert.Len(t, rec.messages, 2)
	assert.Equal(t, [][]float64{{390}, {390}}, rec.timestamps)
}

func TestAsk_ConcurrentCallers(t *testing.T) {
	s := New(assistant.NewDefault(random.NewSeeded(3)), Options{Scheduler: NewManualScheduler()})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				resp := s.Ask("How is current divided in parallel branches?")
				assert.NotEmpty(t, resp.Message)
			}
		}()
	}
	wg.Wait()
}
