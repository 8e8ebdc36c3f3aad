package ai

import (
	"fmt"
	"strings"

	"github.com/pulkeeper/pulkeeper/internal/domain"
)

// buildPrompt constructs the single-turn instruction for the chat model.
// The category enum, the direction cue words and the bare-number rule are
// embedded so the model output can be validated against a closed contract.
func buildPrompt(text string) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Read the user's message and convert it into a structured transaction.\n\n")
	b.WriteString("The user may write in Russian, Uzbek, or English.\n\n")

	b.WriteString("Output STRICT JSON only: no explanations, no comments, no Markdown, no ```json fences.\n")
	b.WriteString("The response must begin with \"{\" and end with \"}\".\n\n")

	b.WriteString("JSON format:\n")
	b.WriteString("{\n")
	b.WriteString("  \"type\": \"expense\" | \"income\",\n")
	b.WriteString("  \"amount\": number,\n")
	b.WriteString("  \"category\": string,\n")
	b.WriteString("  \"title\": string,\n")
	b.WriteString("  \"date\": \"YYYY-MM-DD\" or null\n")
	b.WriteString("}\n\n")

	cats := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		cats = append(cats, string(c))
	}
	b.WriteString("Rules:\n")
	b.WriteString("- \"category\" must be EXACTLY one of: " + strings.Join(cats, ", ") + ".\n")
	b.WriteString("- \"amount\" must be a bare positive number in full currency units: \"20k\" means 20000, \"1.5 млн\" means 1500000, \"икки минг\" means 2000.\n")
	b.WriteString("- Words like зарплата, аванс, доход, maosh, oylik, daromad, salary mean income.\n")
	b.WriteString("- Words like купил, потратил, оплатил, sotib oldim, spent, bought mean expense.\n")
	b.WriteString("- \"title\" is a short label for the operation, in the user's language.\n")
	b.WriteString("- If no date is mentioned, set \"date\" to null.\n\n")

	fmt.Fprintf(&b, "User message:\n%s\n", text)

	return b.String()
}

// cleanModelContent strips the Markdown code-fence wrappers that chat models
// are known to put around JSON even when told not to, then keeps only the
// outermost object if any prose survives around it.
func cleanModelContent(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only from the first '{' to the last '}' when junk remains.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
