package entities

// Language is a selectable UI language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// LanguagePreferenceKey is the persisted key holding the selected language code
const LanguagePreferenceKey = "arovia_language"

// SupportedLanguages lists the languages offered on the landing screen
var SupportedLanguages = []Language{
	{Code: "hi", Name: "हिंदी", Flag: "🇮🇳"},
	{Code: "en", Name: "English", Flag: "🇬🇧"},
	{Code: "te", Name: "తెలుగు", Flag: "🇮🇳"},
	{Code: "ta", Name: "தமிழ்", Flag: "🇮🇳"},
	{Code: "bn", Name: "বাংলা", Flag: "🇮🇳"},
	{Code: "mr", Name: "मराठी", Flag: "🇮🇳"},
}

// LookupLanguage returns the supported language with the given code
func LookupLanguage(code string) (Language, bool) {
	for _, lang := range SupportedLanguages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}
