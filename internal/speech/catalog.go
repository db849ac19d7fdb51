package speech

import (
	"log"
	"strings"
	"sync"

	"github.com/voxalert/voxalert/internal/translate"
)

// Tier records which resolution strategy produced a voice binding.
type Tier string

const (
	TierExact   Tier = "exact"   // voice locale equals the language's preferred locale
	TierPrefix  Tier = "prefix"  // voice locale shares the language code
	TierCurated Tier = "curated" // curated primary locale for the language
	TierRelated Tier = "related" // curated fallback locale (different language)
	TierDefault Tier = "default" // engine default voice
	TierNone    Tier = "none"    // no voice available
)

// Binding is the resolved voice assignment for one language. Voice is nil
// when nothing could be bound; UsedFallback is true when the bound voice
// does not actually speak the requested language.
type Binding struct {
	Voice        *Voice
	Locale       string
	Tier         Tier
	UsedFallback bool
}

// curatedLocales maps a language name to the locales worth probing when
// neither an exact nor a prefix match exists. Primaries speak the language;
// fallbacks are intelligible substitutes for the region.
var curatedLocales = map[string]struct {
	primary   []string
	fallbacks []string
}{
	"Hindi":   {primary: []string{"hi-IN", "hi"}, fallbacks: []string{"en-IN", "en-US", "en-GB"}},
	"Telugu":  {primary: []string{"te-IN", "te"}, fallbacks: []string{"hi-IN", "hi", "en-IN", "en-US"}},
	"Tamil":   {primary: []string{"ta-IN", "ta"}, fallbacks: []string{"hi-IN", "hi", "en-IN", "en-US"}},
	"Bengali": {primary: []string{"bn-IN", "bn", "bn-BD"}, fallbacks: []string{"hi-IN", "hi", "en-IN", "en-US"}},
	"Russian": {primary: []string{"ru-RU", "ru"}, fallbacks: []string{"en-US", "en-GB"}},
	"Arabic":  {primary: []string{"ar-SA", "ar", "ar-EG", "ar-AE"}, fallbacks: []string{"en-US", "en-GB"}},
	"Spanish": {primary: []string{"es-ES", "es", "es-MX", "es-US"}, fallbacks: []string{"en-US"}},
	"French":  {primary: []string{"fr-FR", "fr", "fr-CA"}, fallbacks: []string{"en-US"}},
	"German":  {primary: []string{"de-DE", "de", "de-AT"}, fallbacks: []string{"en-US"}},
	"Italian": {primary: []string{"it-IT", "it"}, fallbacks: []string{"en-US"}},
}

// Catalog resolves logical language names to engine voices and caches the
// result. The cache is invalidated wholesale whenever the engine reports a
// changed voice inventory.
type Catalog struct {
	mu     sync.Mutex
	engine Engine
	cache  map[string]Binding
}

// NewCatalog builds a catalog over the given engine and subscribes to its
// voice inventory changes.
func NewCatalog(engine Engine) *Catalog {
	c := &Catalog{
		engine: engine,
		cache:  make(map[string]Binding),
	}
	engine.OnVoicesChanged(c.Invalidate)
	return c
}

// Invalidate drops every cached binding. The next Resolve per language
// re-runs resolution against the current inventory.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cache) > 0 {
		log.Printf("[VoiceCatalog] Voice inventory changed, dropping %d cached bindings", len(c.cache))
	}
	c.cache = make(map[string]Binding)
}

// Resolve returns the voice binding for a language, computing and caching
// it on first use. Resolution never fails: an unknown language or an empty
// inventory yields a Binding with a nil Voice.
func (c *Catalog) Resolve(language string) Binding {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.cache[language]; ok {
		return b
	}

	b := c.resolveLocked(language)
	c.cache[language] = b
	return b
}

func (c *Catalog) resolveLocked(language string) Binding {
	lang, ok := translate.LookupLanguage(language)
	if !ok {
		log.Printf("[VoiceCatalog] Unknown language %q", language)
		return Binding{Tier: TierNone}
	}

	voices := c.engine.Voices()
	if len(voices) == 0 {
		log.Printf("[VoiceCatalog] No voices available for %s", language)
		return Binding{Tier: TierNone}
	}

	if v := findLocale(voices, lang.Locale); v != nil {
		return Binding{Voice: v, Locale: v.Locale, Tier: TierExact}
	}

	for i := range voices {
		if strings.HasPrefix(voices[i].Locale, lang.Code+"-") {
			v := voices[i]
			return Binding{Voice: &v, Locale: v.Locale, Tier: TierPrefix}
		}
	}

	if m, ok := curatedLocales[lang.Name]; ok {
		for _, loc := range m.primary {
			if v := findLocale(voices, loc); v != nil {
				return Binding{Voice: v, Locale: v.Locale, Tier: TierCurated}
			}
		}
		for _, loc := range m.fallbacks {
			if v := findLocale(voices, loc); v != nil {
				log.Printf("[VoiceCatalog] Using fallback voice %s (%s) for %s", v.Name, v.Locale, language)
				return Binding{Voice: v, Locale: v.Locale, Tier: TierRelated, UsedFallback: true}
			}
		}
	}

	def := voices[0]
	for i := range voices {
		if voices[i].Default {
			def = voices[i]
			break
		}
	}
	log.Printf("[VoiceCatalog] Using default voice %s (%s) for %s", def.Name, def.Locale, language)
	return Binding{Voice: &def, Locale: def.Locale, Tier: TierDefault, UsedFallback: true}
}

func findLocale(voices []Voice, locale string) *Voice {
	for i := range voices {
		if voices[i].Locale == locale {
			v := voices[i]
			return &v
		}
	}
	return nil
}

// Support summarizes voice availability for one language, for the API
// surface that reports per-language readiness.
func (c *Catalog) Support(language string) (voiceName, locale string, supported, fallback bool) {
	b := c.Resolve(language)
	if b.Voice == nil {
		return "", "", false, false
	}
	return b.Voice.Name, b.Locale, !b.UsedFallback, b.UsedFallback
}
