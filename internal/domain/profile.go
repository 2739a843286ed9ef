/**
 * @description
 * This file defines the style profile collected during onboarding and the
 * patch type used for partial updates. Updates are shallow merges: a nil
 * patch field leaves the existing value untouched. There is no explicit
 * "unset" operation.
 */
package domain

// Profile holds the onboarding-collected user attributes.
type Profile struct {
	ID                   string            `json:"id"`
	UserID               string            `json:"user_id"`
	Gender               string            `json:"gender"` // 'male', 'female', 'non-binary', 'prefer-not-to-say'
	Age                  *int              `json:"age,omitempty"`
	HeightCm             *int              `json:"height_cm,omitempty"`
	WeightKg             *int              `json:"weight_kg,omitempty"`
	BodyType             string            `json:"body_type,omitempty"` // 'slim', 'athletic', 'average', 'curvy', 'plus-size'
	SkinTone             string            `json:"skin_tone,omitempty"` // 'fair', 'light', 'medium', 'tan', 'dark', 'deep'
	StylePreferences     []StylePreference `json:"style_preferences"`
	FavoriteColors       []string          `json:"favorite_colors"`
	AvoidColors          []string          `json:"avoid_colors"`
	BudgetRange          BudgetRange       `json:"budget_range"`
	PreferredRetailers   []string          `json:"preferred_retailers"`
	NotificationsEnabled bool              `json:"notifications_enabled"`
	OnboardingCompleted  bool              `json:"onboarding_completed"`
}

// StylePreference is a selectable style tag shown during onboarding.
type StylePreference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Selected bool   `json:"selected"`
}

// BudgetRange is the user's shopping budget. Min > Max is accepted
// uncritically; callers own validation.
type BudgetRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// ProfilePatch carries a partial profile update. Nil fields are absent.
type ProfilePatch struct {
	Gender               *string            `json:"gender,omitempty"`
	Age                  *int               `json:"age,omitempty"`
	HeightCm             *int               `json:"height_cm,omitempty"`
	WeightKg             *int               `json:"weight_kg,omitempty"`
	BodyType             *string            `json:"body_type,omitempty"`
	SkinTone             *string            `json:"skin_tone,omitempty"`
	StylePreferences     *[]StylePreference `json:"style_preferences,omitempty"`
	FavoriteColors       *[]string          `json:"favorite_colors,omitempty"`
	AvoidColors          *[]string          `json:"avoid_colors,omitempty"`
	BudgetRange          *BudgetRange       `json:"budget_range,omitempty"`
	PreferredRetailers   *[]string          `json:"preferred_retailers,omitempty"`
	NotificationsEnabled *bool              `json:"notifications_enabled,omitempty"`
	OnboardingCompleted  *bool              `json:"onboarding_completed,omitempty"`
}
