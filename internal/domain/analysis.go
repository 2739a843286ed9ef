/**
 * @description
 * This file defines the outfit-analysis domain models: the in-progress
 * request draft accumulated across capture/review screens, its patch type,
 * and the immutable analysis result.
 */
package domain

import "time"

// Analysis request types.
const (
	AnalysisTypePhoto = "photo"
	AnalysisTypeText  = "text"
	AnalysisTypeBoth  = "both"
)

// AnalysisRequest is a draft analysis request. It exists only between
// "start analysis" and submit/discard and is mutated via partial merges.
type AnalysisRequest struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"` // 'photo', 'text', 'both'
	ImageBase64 string `json:"image_base64,omitempty"`
	TextPrompt  string `json:"text_prompt,omitempty"`
	Occasion    string `json:"occasion,omitempty"`
	Style       string `json:"style,omitempty"`
}

// AnalysisRequestPatch carries a partial draft update. Nil fields are absent.
type AnalysisRequestPatch struct {
	Type        *string `json:"type,omitempty"`
	ImageBase64 *string `json:"image_base64,omitempty"`
	TextPrompt  *string `json:"text_prompt,omitempty"`
	Occasion    *string `json:"occasion,omitempty"`
	Style       *string `json:"style,omitempty"`
}

// ScoreDetail is one named dimension of an analysis result. Score is an
// integer in [0,100].
type ScoreDetail struct {
	Score           int    `json:"score"`
	Label           string `json:"label"`
	Description     string `json:"description"`
	IsPremiumLocked bool   `json:"is_premium_locked"`
}

// Improvement is a single actionable suggestion attached to a result.
type Improvement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // 'high', 'medium', 'low'
	Completed   bool   `json:"completed"`
}

// AnalysisResult is immutable once created. Results are kept in a bounded
// newest-first history.
type AnalysisResult struct {
	ID                string        `json:"id"`
	CreatedAt         time.Time     `json:"created_at"`
	OverallScore      int           `json:"overall_score"`
	ColorHarmony      ScoreDetail   `json:"color_harmony"`
	FitAssessment     ScoreDetail   `json:"fit_assessment"`
	StyleCoherence    ScoreDetail   `json:"style_coherence"`
	OccasionMatch     ScoreDetail   `json:"occasion_match"`
	Improvements      []Improvement `json:"improvements"`
	OutfitSuggestions []Outfit      `json:"outfit_suggestions"`
	IsPremiumContent  bool          `json:"is_premium_content"`
}
