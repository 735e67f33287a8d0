package qa

import "fmt"

// noWebInfo is substituted when the lookup produced no summary.
const noWebInfo = "No direct web info found."

const promptTemplate = `You are a Scouts BSA expert.

RULES:
- Follow current Scouts BSA policies
- Be youth-safe
- Never invent requirements
- If unsure, say so

Web information:
%s

Question:
%s

Provide a clear, accurate answer.`

func buildPrompt(question, webInfo string) string {
	if webInfo == "" {
		webInfo = noWebInfo
	}
	return fmt.Sprintf(promptTemplate, webInfo, question)
}
