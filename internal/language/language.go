// Package language holds the closed set of target languages a deck can be
// generated for.
package language

// Default is the target language preselected in every front end.
const Default = "English"

var supported = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Japanese",
	"Chinese (Mandarin)",
	"Korean",
	"Russian",
	"Arabic",
	"Dutch",
	"Swedish",
	"Turkish",
	"Hindi",
	"Vietnamese",
}

// All returns the supported target languages in display order
func All() []string {
	return append([]string(nil), supported...)
}

// Supported reports whether name is one of the supported target languages.
// The comparison is exact.
func Supported(name string) bool {
	for _, lang := range supported {
		if lang == name {
			return true
		}
	}
	return false
}
