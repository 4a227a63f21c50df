// Package analysis abstracts the emotion-analysis capability behind a
// provider interface. The shipped provider is a documented placeholder that
// simulates inference output; its random distribution is not a guaranteed
// behavior. Tests use the Static provider.
package analysis

import (
	"math/rand"
	"sync"
)

// FrameAnalysis is the result of analyzing one captured image frame.
type FrameAnalysis struct {
	DominantEmotion string   `json:"dominant_emotion"`
	Confidence      int      `json:"confidence"` // percent
	Suggestions     []string `json:"suggestions"`
}

// VoiceAnalysis is the result of analyzing a finalized audio recording.
type VoiceAnalysis struct {
	Transcript string   `json:"transcript"`
	Emotions   []string `json:"emotions"`
}

// Provider is the pluggable analysis capability.
type Provider interface {
	AnalyzeFrame(frame []byte) FrameAnalysis
	AnalyzeVoice(audioRef string) VoiceAnalysis
}

// Placeholder values mirrored from the product demo.
var (
	frameEmotions = []string{"happy", "calm", "focused", "stressed", "excited"}

	frameSuggestions = []string{
		"Take 3 deep breaths to center yourself",
		"Try a 5-minute mindfulness exercise",
		"Consider taking a short walk outdoors",
	}

	voiceEmotions = []string{"reflective", "thoughtful"}
)

// PlaceholderTranscript is returned until a real speech service is wired.
const PlaceholderTranscript = "Transcription will be available soon..."

// Simulated is the stand-in provider for the real inference service.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulated creates a simulated provider seeded for variety, not
// reproducibility.
func NewSimulated(seed int64) *Simulated {
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

// AnalyzeFrame picks a random dominant emotion with 70-99% confidence and
// the fixed suggestion list.
func (s *Simulated) AnalyzeFrame(_ []byte) FrameAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FrameAnalysis{
		DominantEmotion: frameEmotions[s.rng.Intn(len(frameEmotions))],
		Confidence:      70 + s.rng.Intn(30),
		Suggestions:     append([]string(nil), frameSuggestions...),
	}
}

// AnalyzeVoice returns the placeholder transcript and emotion labels.
func (s *Simulated) AnalyzeVoice(_ string) VoiceAnalysis {
	return VoiceAnalysis{
		Transcript: PlaceholderTranscript,
		Emotions:   append([]string(nil), voiceEmotions...),
	}
}

// Static is a deterministic provider for tests.
type Static struct {
	Frame FrameAnalysis
	Voice VoiceAnalysis
}

// AnalyzeFrame returns the configured frame analysis.
func (s *Static) AnalyzeFrame(_ []byte) FrameAnalysis { return s.Frame }

// AnalyzeVoice returns the configured voice analysis.
func (s *Static) AnalyzeVoice(_ string) VoiceAnalysis { return s.Voice }
