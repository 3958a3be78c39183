package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FBRAPI_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.LiveDataEnabled() {
		t.Fatalf("expected sample fallback when FBRAPI_KEY is unset")
	}
	if cfg.TotalTeams != 12 || cfg.DraftPosition != 7 {
		t.Fatalf("unexpected league defaults: teams=%d position=%d", cfg.TotalTeams, cfg.DraftPosition)
	}
	if cfg.SuggestCount != 8 {
		t.Fatalf("expected suggest count 8, got %d", cfg.SuggestCount)
	}
	if cfg.FBRAPITimeout != 20*time.Second {
		t.Fatalf("expected 20s timeout, got %v", cfg.FBRAPITimeout)
	}
}

func TestLoad_KeyEnablesLiveData(t *testing.T) {
	t.Setenv("FBRAPI_KEY", "secret-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.LiveDataEnabled() {
		t.Fatalf("expected live data when FBRAPI_KEY is set")
	}
}

func TestLoad_DraftPositionBeyondLeagueSize(t *testing.T) {
	t.Setenv("DRAFT_TOTAL_TEAMS", "8")
	t.Setenv("DRAFT_POSITION", "9")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DRAFT_POSITION exceeds DRAFT_TOTAL_TEAMS")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("FBRAPI_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid FBRAPI_TIMEOUT")
	}
}
