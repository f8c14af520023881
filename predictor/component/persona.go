package component

import (
	"fmt"
	"strings"

	"opencsg.com/persona-predictor/common/errorx"
	"opencsg.com/persona-predictor/common/types"
)

// BuildPrompt embeds prompt verbatim into the fixed template of persona.
func BuildPrompt(persona types.Persona, prompt string) (string, error) {
	switch persona {
	case types.PersonaLawyer:
		return fmt.Sprintf(`From a legal perspective, considering the case details: "%s",`, prompt), nil
	case types.PersonaDoctor:
		return fmt.Sprintf(`From a medical standpoint, based on the patient's chart: "%s",`, prompt), nil
	case types.PersonaWriter:
		return fmt.Sprintf(`In the next chapter of the story, the scene continues: "%s",`, prompt), nil
	case types.PersonaTeacher:
		return fmt.Sprintf(`To explain this concept to the class, remember that: "%s", therefore`, prompt), nil
	default:
		return "", errorx.InvalidPersona(string(persona))
	}
}

// firstSentence turns a raw model output into a single sentence: the echoed
// prompt is removed, the text is cut before the first period and trimmed.
func firstSentence(output, prompt string) string {
	text := strings.TrimPrefix(output, prompt)
	if i := strings.Index(text, "."); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
