package llm

import "strings"

// buildPrompt constructs the analysis prompt: style guide, optional
// retrieved context, then the code under review, with instructions to answer
// in JSON.
func buildPrompt(code, styleGuide, ragContext string) string {
	var sb strings.Builder

	sb.WriteString("You are a C++ code style analyzer. Analyze the following code against the provided style guide.\n\n")

	sb.WriteString("Style Guide:\n")
	sb.WriteString(styleGuide)
	sb.WriteString("\n\n")

	if ragContext != "" {
		sb.WriteString("Additional Context:\n")
		sb.WriteString(ragContext)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Code to Analyze:\n")
	sb.WriteString(code)
	sb.WriteString("\n\n")

	sb.WriteString(`Identify all style violations. Respond with a JSON object of the form:
{"violations": [{"type": "...", "severity": "CRITICAL|WARNING|MINOR", "line": 1, "description": "...", "reference": "..."}]}
Use the style guide section name as the reference. Report line numbers from the code as given.`)

	return sb.String()
}
