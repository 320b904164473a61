package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"codeberg.org/snonux/songdeck/internal/analysis"
	"codeberg.org/snonux/songdeck/internal/speech"
)

// Run states. The NotStarted to Running transition is a compare-and-
// swap so re-entrant calls cannot start a second run.
const (
	stateNotStarted int32 = iota
	stateRunning
	stateDone
)

// EventKind classifies a per-line progress event
type EventKind int

const (
	// LineLoading is emitted before synthesis of a line starts
	LineLoading EventKind = iota
	// LineDone is emitted after a line's audio reference is set
	LineDone
	// LineFailed is emitted when synthesis or storage of a line fails
	LineFailed
)

// LineEvent reports the progress of one line during a run
type LineEvent struct {
	Index    int
	Kind     EventKind
	AudioRef string
	Err      error
}

// Orchestrator drives the speech synthesizer across all lines of an
// analysis, strictly sequentially and at most once per orchestrator.
// Sequential execution is intentional: it keeps load on the rate-
// limited synthesis API at one request at a time.
type Orchestrator struct {
	synth   speech.Synthesizer
	workDir string
	state   atomic.Int32
	events  chan LineEvent
}

// New creates an orchestrator that stores synthesized audio under
// workDir as line_<index>.mp3
func New(synth speech.Synthesizer, workDir string) *Orchestrator {
	return &Orchestrator{
		synth:   synth,
		workDir: workDir,
	}
}

// Events returns the per-line progress channel. It must be called
// before Run; the channel is closed when the run finishes. If Events is
// never called, no events are recorded and Run does not block.
func (o *Orchestrator) Events() <-chan LineEvent {
	if o.events == nil {
		o.events = make(chan LineEvent, 16)
	}
	return o.events
}

// Run synthesizes audio for every line of the analysis in index order
// and attaches the resulting reference to the line record. Lines that
// are blank or already carry an audio reference are skipped. One line's
// failure is logged and does not block subsequent lines.
//
// Run executes at most once per orchestrator instance; later calls
// return immediately.
func (o *Orchestrator) Run(ctx context.Context, a *analysis.LyricsAnalysis) error {
	if !o.state.CompareAndSwap(stateNotStarted, stateRunning) {
		return nil
	}
	defer func() {
		o.state.Store(stateDone)
		if o.events != nil {
			close(o.events)
		}
	}()

	if err := os.MkdirAll(o.workDir, 0755); err != nil {
		return fmt.Errorf("failed to create audio work directory: %w", err)
	}

	for i := range a.Lyrics {
		line := &a.Lyrics[i]
		if line.IsBlank() || line.AudioRef != "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		o.emit(LineEvent{Index: i, Kind: LineLoading})

		audioRef, err := o.synthesizeLine(ctx, i, line.IPA, a.LanguageCode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio for line %d failed: %v\n", i, err)
			o.emit(LineEvent{Index: i, Kind: LineFailed, Err: err})
			continue
		}

		line.AudioRef = audioRef
		o.emit(LineEvent{Index: i, Kind: LineDone, AudioRef: audioRef})
	}

	return nil
}

// Done reports whether a run has completed
func (o *Orchestrator) Done() bool {
	return o.state.Load() == stateDone
}

func (o *Orchestrator) synthesizeLine(ctx context.Context, index int, ipa, languageCode string) (string, error) {
	data, err := o.synth.SynthesizeIPA(ctx, ipa, languageCode)
	if err != nil {
		return "", err
	}

	path := filepath.Join(o.workDir, fmt.Sprintf("line_%d.mp3", index))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return path, nil
}

func (o *Orchestrator) emit(event LineEvent) {
	if o.events == nil {
		return
	}
	o.events <- event
}
