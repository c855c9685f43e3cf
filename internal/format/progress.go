package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// maxETA caps the displayed estimate; beyond a day the number is noise.
	maxETA = 24 * time.Hour

	// rateSmoothing is the exponential moving average factor for the
	// progress rate estimate.
	rateSmoothing = 0.3
)

// ProgressState tracks the per-multiplier progress of a concurrent run and
// aggregates it into a single average. Safe for concurrent use.
type ProgressState struct {
	mu             sync.Mutex
	progresses     []float64
	numMultipliers int
}

// NewProgressState creates tracking state for numMultipliers workers.
func NewProgressState(numMultipliers int) *ProgressState {
	if numMultipliers < 0 {
		numMultipliers = 0
	}
	return &ProgressState{
		progresses:     make([]float64, numMultipliers),
		numMultipliers: numMultipliers,
	}
}

// Update records the progress of one multiplier. Out-of-range indices are
// ignored and values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index < 0 || index >= ps.numMultipliers {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	ps.progresses[index] = value
}

// CalculateAverage returns the mean progress across all multipliers.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numMultipliers == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numMultipliers)
}

// ProgressWithETA extends ProgressState with a smoothed completion-time
// estimate derived from the observed progress rate.
type ProgressWithETA struct {
	*ProgressState

	mu           sync.Mutex
	progressRate float64 // fraction per second, exponentially smoothed
	lastAverage  float64
	lastUpdate   time.Time
	startTime    time.Time
}

// NewProgressWithETA creates ETA-capable tracking state for numMultipliers
// workers.
func NewProgressWithETA(numMultipliers int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numMultipliers),
		lastUpdate:    now,
		startTime:     now,
	}
}

// UpdateWithETA records one multiplier's progress and returns the new
// aggregate average together with the estimated time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	average := p.CalculateAverage()

	p.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0 && average > p.lastAverage {
		instantRate := (average - p.lastAverage) / elapsed
		if p.progressRate == 0 {
			p.progressRate = instantRate
		} else {
			p.progressRate = rateSmoothing*instantRate + (1-rateSmoothing)*p.progressRate
		}
		p.lastAverage = average
		p.lastUpdate = now
	}
	p.mu.Unlock()

	return average, p.GetETA()
}

// GetETA returns the current time-remaining estimate. It reports 0 until
// enough updates have arrived to establish a rate.
func (p *ProgressWithETA) GetETA() time.Duration {
	average := p.CalculateAverage()

	p.mu.Lock()
	rate := p.progressRate
	p.mu.Unlock()

	if rate <= 0 || average >= 1 {
		return 0
	}
	eta := time.Duration((1 - average) / rate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders a time-remaining estimate compactly: "45s", "2m30s",
// "1h15m". Non-positive estimates render as "calculating...".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)

	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders a fixed-width textual progress bar. The value is
// clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a progress bar, percentage, and ETA on
// one line, ready for carriage-return refresh in a terminal.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% | ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// FormatNumberString inserts thousand separators into a decimal number
// string, preserving a leading sign.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.WriteString(sign)
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
