package anki

import "time"

// Field order of the note type; flds in the notes table follows it
var noteFields = []string{"Term", "Definition", "Context"}

// fieldSeparator joins note fields in the flds column (ASCII unit separator)
const fieldSeparator = "\x1f"

func (w *APKGWriter) noteTypeConfig() map[string]interface{} {
	flds := make([]map[string]interface{}, len(noteFields))
	for i, name := range noteFields {
		size := 20
		if name == "Context" {
			size = 16
		}
		flds[i] = map[string]interface{}{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   size,
			"media":  []string{},
		}
	}

	return map[string]interface{}{
		"id":        w.modelID,
		"name":      "Glossy Flash (Basic)",
		"type":      0,
		"mod":       time.Now().Unix(),
		"usn":       -1,
		"sortf":     0,
		"did":       w.deckID,
		"req":       [][]interface{}{{0, "all", []int{0}}},
		"vers":      []int{},
		"tags":      []string{},
		"latexPre":  latexPre,
		"latexPost": `\end{document}`,
		"flds":      flds,
		"tmpls": []map[string]interface{}{
			{
				"name":  "Card 1",
				"ord":   0,
				"qfmt":  frontTemplate,
				"afmt":  backTemplate,
				"did":   nil,
				"bqfmt": "",
				"bafmt": "",
			},
		},
		"css": cardCSS,
	}
}

const latexPre = `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`

const frontTemplate = `<div class="front">
<div class="term">{{Term}}</div>
</div>`

const backTemplate = `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="definition">{{Definition}}</div>
{{#Context}}
<div class="context">{{Context}}</div>
{{/Context}}
</div>`

const cardCSS = `.card {
  font-family: Arial, sans-serif;
  font-size: 20px;
  text-align: center;
  color: #1f2937;
  background-color: white;
}

.front, .back {
  padding: 20px;
}

.term {
  font-size: 32px;
  font-weight: bold;
  color: #4f46e5;
  margin: 20px 0;
}

.definition {
  font-size: 26px;
  margin: 20px 0;
}

.context {
  font-size: 16px;
  color: #6b7280;
  margin-top: 20px;
  font-style: italic;
}

hr#answer {
  margin: 30px 0;
  border: 0;
  border-top: 1px solid #e5e7eb;
}`
