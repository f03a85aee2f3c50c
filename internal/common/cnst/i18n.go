package cnst

const (
	// XLang is the header/context key carrying the request language
	XLang = "X-Lang"

	LangJA = "ja"
	LangEN = "en"

	// LangDefault is the fallback language for user-facing messages
	LangDefault = LangJA
)
