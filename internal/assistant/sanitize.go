package assistant

import (
	"farma-vida/internal/llm"
	"farma-vida/pkg"
)

// SanitizeCompletion maps a provider completion onto the caller-facing
// result.  All three branches are OK=true: a safety decline and an empty
// completion are displayable outcomes of a successful interaction, distinct
// from a failed provider call (which never reaches this function).
func SanitizeCompletion(comp llm.Completion) pkg.AssistantResult {
	switch comp.Kind {
	case llm.CompletionRejected:
		// Any partial text the provider attached is discarded; the fixed
		// rephrase message is the whole answer.
		return pkg.AssistantResult{OK: true, Response: SafetyDeclinedMessage}
	case llm.CompletionText:
		return pkg.AssistantResult{OK: true, Response: comp.Text}
	default:
		return pkg.AssistantResult{OK: true, Response: EmptyResponseMessage}
	}
}
