package dto

// OnboardingFlagsDTO is the per-buyer onboarding state previously kept
// client-side; it now lives in the injected KV store.
type OnboardingFlagsDTO struct {
	WelcomeTourDone    bool `json:"welcome_tour_done"`
	ProfileCompleted   bool `json:"profile_completed"`
	FirstCartSubmitted bool `json:"first_cart_submitted"`
}

// UpdateOnboardingFlagsDTO carries a partial update; nil fields are left
// unchanged.
type UpdateOnboardingFlagsDTO struct {
	WelcomeTourDone    *bool `json:"welcome_tour_done,omitempty"`
	ProfileCompleted   *bool `json:"profile_completed,omitempty"`
	FirstCartSubmitted *bool `json:"first_cart_submitted,omitempty"`
}
