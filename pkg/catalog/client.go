/**
 * @description
 * This package is the mock backend collaborator: it serves canned catalog
 * data (products, outfits, trends), builds canned analysis results, and
 * simulates billing calls with artificial latency and canned failures.
 * The contract with callers is success-or-error; callers only mutate
 * their own state on explicit success.
 */
package catalog

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/styleadvisor/session-service/internal/domain"
)

// Client is the mock catalog and billing collaborator.
type Client struct {
	latency time.Duration

	mu           sync.Mutex
	failNextSub  bool
	restoredPlan string
}

// NewClient creates a client that sleeps for latency on billing calls to
// simulate the network.
func NewClient(latency time.Duration) *Client {
	return &Client{latency: latency}
}

// Products returns the canned product catalog.
func (c *Client) Products() []domain.Product {
	out := make([]domain.Product, len(mockProducts))
	copy(out, mockProducts)
	return out
}

// Outfits returns the canned outfit suggestions.
func (c *Client) Outfits() []domain.Outfit {
	out := make([]domain.Outfit, len(mockOutfits))
	copy(out, mockOutfits)
	return out
}

// Trends returns the canned trend entries.
func (c *Client) Trends() []domain.Trend {
	out := make([]domain.Trend, len(mockTrends))
	copy(out, mockTrends)
	return out
}

// FailNextSubscribe makes the next Subscribe call return a canned
// failure. Used to exercise the error path.
func (c *Client) FailNextSubscribe() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNextSub = true
}

// SetRestoredPlan seeds a past purchase so RestorePurchases has
// something to replay.
func (c *Client) SetRestoredPlan(plan string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restoredPlan = plan
}

// Subscribe simulates a purchase of the given plan.
func (c *Client) Subscribe(ctx context.Context, userID, plan string) (domain.PurchaseResult, error) {
	if err := c.sleep(ctx); err != nil {
		return domain.PurchaseResult{}, err
	}

	c.mu.Lock()
	fail := c.failNextSub
	c.failNextSub = false
	c.mu.Unlock()

	if fail {
		return domain.PurchaseResult{Success: false, ErrorMessage: "Payment was declined"}, nil
	}

	switch plan {
	case domain.PlanMonthly, domain.PlanYearly, domain.PlanLifetime:
	default:
		return domain.PurchaseResult{Success: false, ErrorMessage: "Unknown subscription plan"}, nil
	}

	var expires *time.Time
	switch plan {
	case domain.PlanMonthly:
		t := time.Now().UTC().AddDate(0, 1, 0)
		expires = &t
	case domain.PlanYearly:
		t := time.Now().UTC().AddDate(1, 0, 0)
		expires = &t
	}

	c.mu.Lock()
	c.restoredPlan = plan
	c.mu.Unlock()

	return domain.PurchaseResult{Success: true, Plan: plan, ExpiresAt: expires}, nil
}

// RestorePurchases replays the seeded past purchase, if any.
func (c *Client) RestorePurchases(ctx context.Context, userID string) (domain.PurchaseResult, error) {
	if err := c.sleep(ctx); err != nil {
		return domain.PurchaseResult{}, err
	}

	c.mu.Lock()
	plan := c.restoredPlan
	c.mu.Unlock()

	if plan == "" {
		return domain.PurchaseResult{Success: true, RestoredPurchases: 0}, nil
	}
	return domain.PurchaseResult{Success: true, Plan: plan, RestoredPurchases: 1}, nil
}

// BuildResult produces a canned analysis result for the draft. Scores
// are derived from the draft contents so repeat submissions of the same
// draft score the same. Free-tier results lock the premium detail
// sections and suggestions beyond the first two.
func (c *Client) BuildResult(req domain.AnalysisRequest, premiumContent bool) domain.AnalysisResult {
	seed := scoreSeed(req)
	overall := 62 + int(seed%31) // [62, 92]

	detail := func(offset uint32, label, description string, premiumLocked bool) domain.ScoreDetail {
		score := 55 + int((seed/offset)%41) // [55, 95]
		return domain.ScoreDetail{
			Score:           score,
			Label:           label,
			Description:     description,
			IsPremiumLocked: premiumLocked && !premiumContent,
		}
	}

	suggestions := make([]domain.Outfit, len(mockOutfits))
	copy(suggestions, mockOutfits)
	for i := range suggestions {
		suggestions[i].IsPremiumLocked = !premiumContent && i >= 2
	}

	return domain.AnalysisResult{
		ID:             uuid.New().String(),
		CreatedAt:      time.Now().UTC(),
		OverallScore:   overall,
		ColorHarmony:   detail(3, "Color Harmony", "How well your colors work together", true),
		FitAssessment:  detail(5, "Fit Assessment", "How the pieces fit your body type", true),
		StyleCoherence: detail(7, "Style Coherence", "How consistent the overall look is", false),
		OccasionMatch:  detail(11, "Occasion Match", "How suited the outfit is to the occasion", false),
		Improvements: []domain.Improvement{
			{ID: uuid.New().String(), Title: "Add a statement accessory", Description: "A bold accessory would elevate this look", Priority: "medium"},
			{ID: uuid.New().String(), Title: "Consider a structured layer", Description: "A blazer or jacket adds polish", Priority: "low"},
		},
		OutfitSuggestions: suggestions,
		IsPremiumContent:  premiumContent,
	}
}

func (c *Client) sleep(ctx context.Context) error {
	if c.latency <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.latency):
		return nil
	}
}

func scoreSeed(req domain.AnalysisRequest) uint32 {
	h := fnv.New32a()
	h.Write([]byte(req.Type))
	h.Write([]byte(req.TextPrompt))
	h.Write([]byte(req.Occasion))
	h.Write([]byte(req.Style))
	seed := h.Sum32()
	if seed == 0 {
		seed = 1
	}
	return seed
}
