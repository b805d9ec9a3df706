package services

import (
	"fmt"
	"strings"
)

// prompts.go holds the prompt templates sent to the language model. Keeping
// them together makes them easy to tweak without touching the rest of the
// code.

// moodLabels is the closed set of journal moods. The classifier never returns
// anything outside this list.
var moodLabels = []string{"Happy", "Content", "Neutral", "Sad", "Anxious"}

func moodPrompt(entry string) string {
	return fmt.Sprintf(
		"Analyze the following journal entry and determine the primary mood from this list: %s. Respond with only the single mood word.\n\nEntry: %q",
		strings.Join(moodLabels, ", "), entry)
}

func supportPrompt(entry, mood string) string {
	return fmt.Sprintf(
		"A user is feeling %s. Their journal entry is:\n%q\n\nBased on this, provide a short, supportive, and encouraging response. Offer a gentle reframe or a positive perspective if appropriate, but prioritize validation and empathy. Keep the tone warm and conversational.",
		mood, entry)
}

func diagnosisPrompt(symptoms string) string {
	return fmt.Sprintf(
		"A patient presents with the following symptoms: %q\n\nBased on this information, what is the likely diagnosis and what are the recommended next steps? Provide a brief, clear, and cautious medical opinion. This is not a substitute for a real medical consultation.",
		symptoms)
}

func vitalsPrompt(bloodPressure, sugarLevel string, heartRate int, temperature float64) string {
	return fmt.Sprintf(
		"A patient has recorded the following vitals:\n- Blood Pressure: %s\n- Sugar Level: %s mg/dL\n- Heart Rate: %d BPM\n- Temperature: %.1f °F\n\nBased on these vitals, provide a brief analysis of potential health risks and some general wellness suggestions. This is not a substitute for a real medical consultation. Keep the analysis concise and easy to understand.",
		bloodPressure, sugarLevel, heartRate, temperature)
}
