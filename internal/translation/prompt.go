package translation

import (
	"fmt"
	"strings"
)

// BuildPrompt creates the instruction sent to the generation service. The
// glosses are embedded verbatim apart from surrounding whitespace.
func BuildPrompt(glosses, targetLanguage string) string {
	return fmt.Sprintf(`Translate the following list of terms/glosses into %s.
Provide a clear definition and optionally a short context sentence for each.
Keep every term exactly as written in the list and return one flashcard per term.
Glosses:
%s`, targetLanguage, strings.TrimSpace(glosses))
}
