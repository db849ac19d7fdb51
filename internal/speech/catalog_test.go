package speech

import (
	"testing"
)

func TestCatalogExactMatch(t *testing.T) {
	engine := NewSimEngine()
	catalog := NewCatalog(engine)

	b := catalog.Resolve("Spanish")
	if b.Voice == nil {
		t.Fatal("expected a voice for Spanish")
	}
	if b.Tier != TierExact {
		t.Errorf("expected exact tier, got %s", b.Tier)
	}
	if b.Voice.Locale != "es-ES" {
		t.Errorf("expected es-ES, got %s", b.Voice.Locale)
	}
	if b.UsedFallback {
		t.Error("exact match should not be a fallback")
	}
}

func TestCatalogPrefixMatch(t *testing.T) {
	engine := NewSimEngine()
	engine.SetVoices([]Voice{
		{ID: "v1", Name: "Luciana", Locale: "pt-BR"},
	})
	catalog := NewCatalog(engine)

	b := catalog.Resolve("Portuguese")
	if b.Voice == nil || b.Voice.Locale != "pt-BR" {
		t.Fatalf("expected pt-BR prefix match, got %+v", b)
	}
	if b.Tier != TierPrefix {
		t.Errorf("expected prefix tier, got %s", b.Tier)
	}
}

func TestCatalogCuratedFallback(t *testing.T) {
	engine := NewSimEngine()
	engine.SetVoices([]Voice{
		{ID: "v1", Name: "Lekha", Locale: "hi-IN"},
		{ID: "v2", Name: "Samantha", Locale: "en-US", Default: true},
	})
	catalog := NewCatalog(engine)

	// No Telugu voice installed; the curated list reaches Hindi.
	b := catalog.Resolve("Telugu")
	if b.Voice == nil || b.Voice.Locale != "hi-IN" {
		t.Fatalf("expected hi-IN fallback, got %+v", b)
	}
	if b.Tier != TierRelated {
		t.Errorf("expected related tier, got %s", b.Tier)
	}
	if !b.UsedFallback {
		t.Error("curated fallback must be flagged")
	}
}

func TestCatalogDefaultVoice(t *testing.T) {
	engine := NewSimEngine()
	engine.SetVoices([]Voice{
		{ID: "v1", Name: "Daniel", Locale: "en-GB"},
		{ID: "v2", Name: "Samantha", Locale: "en-US", Default: true},
	})
	catalog := NewCatalog(engine)

	b := catalog.Resolve("Japanese")
	if b.Voice == nil || b.Voice.Locale != "en-US" {
		t.Fatalf("expected engine default voice, got %+v", b)
	}
	if b.Tier != TierDefault || !b.UsedFallback {
		t.Errorf("expected flagged default tier, got %+v", b)
	}
}

func TestCatalogUnknownLanguage(t *testing.T) {
	engine := NewSimEngine()
	catalog := NewCatalog(engine)

	b := catalog.Resolve("Klingon")
	if b.Voice != nil {
		t.Errorf("unknown language should bind no voice, got %+v", b.Voice)
	}
	if b.Tier != TierNone {
		t.Errorf("expected none tier, got %s", b.Tier)
	}
}

func TestCatalogCacheInvalidation(t *testing.T) {
	engine := NewSimEngine()
	engine.SetVoices([]Voice{
		{ID: "v1", Name: "Samantha", Locale: "en-US", Default: true},
	})
	catalog := NewCatalog(engine)

	// French's curated fallback list includes en-US, so the only installed
	// voice binds as a related fallback.
	b := catalog.Resolve("French")
	if b.Tier != TierRelated || !b.UsedFallback {
		t.Fatalf("expected related fallback binding before French voice exists, got %+v", b)
	}

	// Installing a French voice must invalidate the cached binding.
	engine.SetVoices([]Voice{
		{ID: "v1", Name: "Samantha", Locale: "en-US", Default: true},
		{ID: "v2", Name: "Thomas", Locale: "fr-FR"},
	})

	b = catalog.Resolve("French")
	if b.Tier != TierExact || b.Voice == nil || b.Voice.Locale != "fr-FR" {
		t.Fatalf("expected fresh exact binding after voices changed, got %+v", b)
	}
}
