package models

import (
	"testing"
	"time"
)

func TestBadgeResponses(t *testing.T) {
	awarded := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	badges := []Badge{
		{UserID: 1, Type: BadgeSniper, CreatedAt: awarded},
		{UserID: 1, Type: BadgeMillionaire},
	}

	responses := BadgeResponses(badges)
	if len(responses) != 2 {
		t.Fatalf("responses = %d, want 2", len(responses))
	}
	if responses[0].Label != "Sniper" {
		t.Errorf("label = %q, want Sniper", responses[0].Label)
	}
	if responses[0].Description != BadgeDefinitions[BadgeSniper].Description {
		t.Errorf("description = %q, want catalog description", responses[0].Description)
	}
	if !responses[0].AwardedAt.Equal(awarded) {
		t.Errorf("awarded at = %v, want %v", responses[0].AwardedAt, awarded)
	}
	if responses[1].Label != "Millionnaire" {
		t.Errorf("label = %q, want Millionnaire", responses[1].Label)
	}
}

func TestBadgeResponsesUnknownType(t *testing.T) {
	responses := BadgeResponses([]Badge{{UserID: 1, Type: BadgeType("LEGACY")}})
	if len(responses) != 1 {
		t.Fatalf("responses = %d, want 1", len(responses))
	}
	if responses[0].Label != "LEGACY" {
		t.Errorf("label = %q, want the raw tag as fallback", responses[0].Label)
	}
}
