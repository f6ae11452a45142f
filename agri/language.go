package agri

// DefaultLanguage is assumed until the stored preference is loaded.
const DefaultLanguage = "en"

// LanguageNames maps supported preference codes to the language name used in
// AI prompts.
var LanguageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"te": "Telugu",
	"ta": "Tamil",
	"kn": "Kannada",
	"ml": "Malayalam",
	"mr": "Marathi",
	"gu": "Gujarati",
	"bn": "Bengali",
	"pa": "Punjabi",
	"ur": "Urdu",
	"or": "Odia",
}

// LanguageName returns the prompt-facing name for a code, defaulting to
// English for anything unknown.
func LanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return "English"
}

// SupportedLanguage reports whether the code can be stored as a preference.
func SupportedLanguage(code string) bool {
	_, ok := LanguageNames[code]
	return ok
}
