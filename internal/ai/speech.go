package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultSpeechURL = "https://api.elevenlabs.io/v1"

	// defaultVoiceID is the "Rachel" voice.
	defaultVoiceID = "21m00Tcm4TlvDq8ikWAM"

	speechModel = "eleven_monolingual_v1"
)

// SpeechClient calls the ElevenLabs text-to-speech endpoint.
type SpeechClient struct {
	apiKey  string
	baseURL string
	voiceID string
	http    *http.Client
}

// NewSpeechClient builds a client using the default voice.
func NewSpeechClient(apiKey string) *SpeechClient {
	return &SpeechClient{
		apiKey:  apiKey,
		baseURL: defaultSpeechURL,
		voiceID: defaultVoiceID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewSpeechClientWithBaseURL is used by tests to point at a stub server.
func NewSpeechClientWithBaseURL(apiKey, baseURL string) *SpeechClient {
	c := NewSpeechClient(apiKey)
	c.baseURL = baseURL
	return c
}

type speechRequest struct {
	Text          string `json:"text"`
	ModelID       string `json:"model_id"`
	VoiceSettings struct {
		Stability       float64 `json:"stability"`
		SimilarityBoost float64 `json:"similarity_boost"`
	} `json:"voice_settings"`
}

// Synthesize converts text into MPEG audio bytes.
func (c *SpeechClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body := speechRequest{Text: text, ModelID: speechModel}
	body.VoiceSettings.Stability = 0.5
	body.VoiceSettings.SimilarityBoost = 0.75

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceID), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech API returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
