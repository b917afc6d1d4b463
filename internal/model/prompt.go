package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultMaxTokens bounds the completion of a palette request.
const DefaultMaxTokens = 200

const themePromptTemplate = `Generate exactly 5 hex color codes for a %[1]s themed color palette.

The colors should:
- Capture the mood and aesthetic of %[1]s
- Work harmoniously together
- Be suitable for design projects
- Include variety in lightness and saturation

Respond with ONLY a JSON object in this exact format:
{
  "colors": ["#RRGGBB", "#RRGGBB", "#RRGGBB", "#RRGGBB", "#RRGGBB"],
  "theme": %[1]s
}

No additional text or explanation.`

// ThemePrompt builds the palette prompt for theme. The theme is embedded as
// a JSON string so quotes in user input cannot break the requested format.
// HTML characters are kept as typed.
func ThemePrompt(theme string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(theme); err != nil {
		return fmt.Sprintf(themePromptTemplate, `""`)
	}
	return fmt.Sprintf(themePromptTemplate, bytes.TrimRight(buf.Bytes(), "\n"))
}
