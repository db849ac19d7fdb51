package translate

import "strings"

// Language is one logical target language alerts can be delivered in.
// Code is the ISO 639-1 code, Locale the preferred BCP-47 voice locale.
type Language struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Locale string `json:"locale"`
}

// languages is the full supported set, in display order.
var languages = []Language{
	{Name: "English", Code: "en", Locale: "en-US"},
	{Name: "Spanish", Code: "es", Locale: "es-ES"},
	{Name: "French", Code: "fr", Locale: "fr-FR"},
	{Name: "German", Code: "de", Locale: "de-DE"},
	{Name: "Italian", Code: "it", Locale: "it-IT"},
	{Name: "Portuguese", Code: "pt", Locale: "pt-PT"},
	{Name: "Russian", Code: "ru", Locale: "ru-RU"},
	{Name: "Japanese", Code: "ja", Locale: "ja-JP"},
	{Name: "Chinese", Code: "zh", Locale: "zh-CN"},
	{Name: "Arabic", Code: "ar", Locale: "ar-SA"},
	{Name: "Hindi", Code: "hi", Locale: "hi-IN"},
	{Name: "Korean", Code: "ko", Locale: "ko-KR"},
	{Name: "Dutch", Code: "nl", Locale: "nl-NL"},
	{Name: "Swedish", Code: "sv", Locale: "sv-SE"},
	{Name: "Polish", Code: "pl", Locale: "pl-PL"},
	{Name: "Telugu", Code: "te", Locale: "te-IN"},
	{Name: "Tamil", Code: "ta", Locale: "ta-IN"},
	{Name: "Bengali", Code: "bn", Locale: "bn-IN"},
	{Name: "Gujarati", Code: "gu", Locale: "gu-IN"},
	{Name: "Marathi", Code: "mr", Locale: "mr-IN"},
	{Name: "Punjabi", Code: "pa", Locale: "pa-IN"},
	{Name: "Urdu", Code: "ur", Locale: "ur-PK"},
	{Name: "Turkish", Code: "tr", Locale: "tr-TR"},
	{Name: "Vietnamese", Code: "vi", Locale: "vi-VN"},
	{Name: "Thai", Code: "th", Locale: "th-TH"},
}

// Languages returns the supported language set.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// LookupLanguage resolves a language by name, case-insensitively.
func LookupLanguage(name string) (Language, bool) {
	for _, l := range languages {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Language{}, false
}
