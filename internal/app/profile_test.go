package app

import (
	"testing"

	"github.com/styleadvisor/session-service/internal/domain"
)

func TestUpdateWithoutProfileIsNoOp(t *testing.T) {
	var notified int
	s := NewProfileStore(func(store string, payload []byte) { notified++ })

	gender := "female"
	s.Update(domain.ProfilePatch{Gender: &gender})

	if s.Get() != nil {
		t.Fatal("expected no profile to be created by an update")
	}
	if notified != 0 {
		t.Fatalf("expected no snapshot notification, got %d", notified)
	}
}

func TestUpdateMergesOnlyPresentFields(t *testing.T) {
	s := NewProfileStore(nil)
	s.Set(domain.Profile{
		ID:             "profile-1",
		Gender:         "male",
		BodyType:       "athletic",
		FavoriteColors: []string{"navy", "white"},
	})

	skinTone := "tan"
	s.Update(domain.ProfilePatch{SkinTone: &skinTone})

	got := s.Get()
	if got.SkinTone != "tan" {
		t.Fatalf("expected skin tone updated, got %q", got.SkinTone)
	}
	if got.Gender != "male" || got.BodyType != "athletic" {
		t.Fatalf("expected untouched fields to survive, got %+v", got)
	}
	if len(got.FavoriteColors) != 2 {
		t.Fatalf("expected favorite colors to survive, got %v", got.FavoriteColors)
	}
}

func TestInvertedBudgetRangeIsAccepted(t *testing.T) {
	s := NewProfileStore(nil)
	s.Set(domain.Profile{ID: "profile-1"})

	s.SetBudgetRange(domain.BudgetRange{Min: 500, Max: 100, Currency: "USD"})

	got := s.Get().BudgetRange
	if got.Min != 500 || got.Max != 100 {
		t.Fatalf("expected inverted range stored as-is, got %+v", got)
	}
}

func TestSetStylePreferencesReplacesSlice(t *testing.T) {
	s := NewProfileStore(nil)
	s.Set(domain.Profile{
		ID: "profile-1",
		StylePreferences: []domain.StylePreference{
			{ID: "casual", Selected: true},
			{ID: "formal"},
		},
	})

	s.SetStylePreferences([]domain.StylePreference{{ID: "streetwear", Selected: true}})

	got := s.Get().StylePreferences
	if len(got) != 1 || got[0].ID != "streetwear" {
		t.Fatalf("expected replaced preferences, got %+v", got)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewProfileStore(nil)
	s.Set(domain.Profile{ID: "profile-1", Gender: "female"})

	got := s.Get()
	got.Gender = "male"

	if s.Get().Gender != "female" {
		t.Fatal("expected mutation of the returned copy to not affect the store")
	}
}
