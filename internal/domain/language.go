package domain

import "sort"

// Languages is the catalog of target languages offered to users, keyed by the
// code sent to the translation provider.
var Languages = map[string]string{
	"af": "Afrikaans", "ar": "Arabic", "bn": "Bengali", "bg": "Bulgarian",
	"ca": "Catalan", "zh-CN": "Chinese (Simplified)", "zh-TW": "Chinese (Traditional)",
	"hr": "Croatian", "cs": "Czech", "da": "Danish", "nl": "Dutch", "en": "English",
	"et": "Estonian", "fil": "Filipino", "fi": "Finnish", "fr": "French", "de": "German",
	"el": "Greek", "gu": "Gujarati", "he": "Hebrew", "hi": "Hindi", "hu": "Hungarian",
	"id": "Indonesian", "it": "Italian", "ja": "Japanese", "kn": "Kannada", "ko": "Korean",
	"lv": "Latvian", "lt": "Lithuanian", "ml": "Malayalam", "mr": "Marathi", "ne": "Nepali",
	"no": "Norwegian", "pa": "Punjabi", "pl": "Polish", "pt": "Portuguese", "ro": "Romanian",
	"ru": "Russian", "sr": "Serbian", "si": "Sinhala", "sk": "Slovak", "sl": "Slovenian",
	"es": "Spanish", "sw": "Swahili", "sv": "Swedish", "ta": "Tamil", "te": "Telugu",
	"th": "Thai", "tr": "Turkish", "uk": "Ukrainian", "ur": "Urdu", "vi": "Vietnamese",
}

// DefaultTargetLanguage is used when a request does not name a language.
const DefaultTargetLanguage = "en"

// Language is a catalog entry.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageName returns the display name for code, or code itself when it is
// not in the catalog.
func LanguageName(code string) string {
	if name, ok := Languages[code]; ok {
		return name
	}
	return code
}

// SortedLanguages returns the catalog ordered by display name.
func SortedLanguages() []Language {
	out := make([]Language, 0, len(Languages))
	for code, name := range Languages {
		out = append(out, Language{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
