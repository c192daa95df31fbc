package inference

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Special tokens used by the Command-R prompt format.
const (
	bosToken     = "<BOS_TOKEN>"
	startOfTurn  = "<|START_OF_TURN_TOKEN|>"
	endOfTurn    = "<|END_OF_TURN_TOKEN|>"
	userToken    = "<|USER_TOKEN|>"
	chatbotToken = "<|CHATBOT_TOKEN|>"
	systemToken  = "<|SYSTEM_TOKEN|>"
)

const toolPreambleTemplate = `# Safety Preamble
The instructions in this section override those in the task description and style guide sections. Don't answer questions that are harmful or immoral.

# System Preamble
## Basic Rules
You are a powerful conversational AI trained to help people by responding to their requests. You are augmented by a number of tools, and your job is to use and consume the output of these tools to best help the user.

## Available Tools
Here is a list of tools that you have available to you:

{{range .Tools}}` + "```python" + `
def {{.Name}}({{signature .}}) -> List[Dict]:
    """{{.Description}}

    Args:
{{- range .Parameters}}
        {{.Name}} ({{.Type}}): {{.Description}}
{{- end}}
    """
    pass
` + "```" + `

{{end}}`

const toolDirective = `Write 'Action:' followed by a json-formatted list of actions that you want to perform in order to produce a good response to the user's last input. You can use any of the supplied tools any number of times, but you should aim to execute the minimum number of necessary actions for the input.`

const groundedPreamble = `# Safety Preamble
The instructions in this section override those in the task description and style guide sections. Don't answer questions that are harmful or immoral.

# System Preamble
## Basic Rules
You are a powerful conversational AI trained to help people by responding to their requests. You will be given source documents; ground your replies in them and cite the documents you used.`

const (
	citationDirectiveAccurate = `Carefully perform the following instructions, in order. First, decide which of the retrieved documents are relevant to the user's last input. Second, write a high quality response to the user's last input. Finally, insert citations into your response using the format <co: doc-index></co> around every span that is supported by a document.`
	citationDirectiveFast     = `Write a response to the user's last input, citing the retrieved documents inline using the format <co: doc-index></co>. Do not explain which documents you chose.`
)

// Tokenizer renders structured conversations into single prompt strings in
// the Command-R format, ready for the completion endpoint. Rendering is
// deterministic and pure.
type Tokenizer struct {
	Model        string
	toolPreamble *template.Template
}

// NewTokenizer creates a Tokenizer for the given model.
func NewTokenizer(model string) *Tokenizer {
	funcs := template.FuncMap{
		"signature": pythonSignature,
	}
	return &Tokenizer{
		Model:        model,
		toolPreamble: template.Must(template.New("tools").Funcs(funcs).Parse(toolPreambleTemplate)),
	}
}

// pythonSignature renders a tool's parameter list as a python-style
// signature, optional parameters defaulting to None.
func pythonSignature(t Tool) string {
	parts := make([]string, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		if p.Required {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Type))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s = None", p.Name, p.Type))
		}
	}
	return strings.Join(parts, ", ")
}

// roleToken maps a conversation role onto its turn token.
func roleToken(role string) string {
	switch strings.ToLower(role) {
	case "assistant", "chatbot":
		return chatbotToken
	case "system":
		return systemToken
	default:
		return userToken
	}
}

// writeTurn appends one role-tagged turn.
func writeTurn(b *strings.Builder, role, content string) {
	b.WriteString(startOfTurn)
	b.WriteString(roleToken(role))
	b.WriteString(content)
	b.WriteString(endOfTurn)
}

// writeGenerationPrompt appends the opening of the model's reply turn.
func writeGenerationPrompt(b *strings.Builder) {
	b.WriteString(startOfTurn)
	b.WriteString(chatbotToken)
}

// ApplyChatTemplate renders a conversation into a prompt ending in a
// generation prompt.
func (t *Tokenizer) ApplyChatTemplate(conversation []Message) (string, error) {
	var b strings.Builder
	b.WriteString(bosToken)
	for _, msg := range conversation {
		writeTurn(&b, msg.Role, msg.Content)
	}
	writeGenerationPrompt(&b)
	return b.String(), nil
}

// ApplyToolUseTemplate renders a conversation plus a set of available tools
// into a tool-use prompt. Tools and their parameters are listed in the
// order supplied.
func (t *Tokenizer) ApplyToolUseTemplate(conversation []Message, tools []Tool) (string, error) {
	var preamble bytes.Buffer
	if err := t.toolPreamble.Execute(&preamble, struct{ Tools []Tool }{Tools: tools}); err != nil {
		return "", fmt.Errorf("failed to render tool preamble: %w", err)
	}

	var b strings.Builder
	b.WriteString(bosToken)
	writeTurn(&b, "system", strings.TrimRight(preamble.String(), "\n"))
	for _, msg := range conversation {
		writeTurn(&b, msg.Role, msg.Content)
	}
	writeTurn(&b, "system", toolDirective)
	writeGenerationPrompt(&b)
	return b.String(), nil
}

// ApplyGroundedGenerationTemplate renders a conversation plus source
// documents into a grounded-generation prompt. The citation mode selects the
// closing directive: "accurate" asks for the full relevance/answer/citation
// procedure, "fast" asks for a directly cited answer.
func (t *Tokenizer) ApplyGroundedGenerationTemplate(conversation []Message, documents []Document, citationMode string) (string, error) {
	var b strings.Builder
	b.WriteString(bosToken)
	writeTurn(&b, "system", groundedPreamble)
	for _, msg := range conversation {
		writeTurn(&b, msg.Role, msg.Content)
	}

	var results strings.Builder
	results.WriteString("<results>\n")
	for i, doc := range documents {
		if i > 0 {
			results.WriteString("\n")
		}
		fmt.Fprintf(&results, "Document: %d\ntitle: %s\ntext: %s\n", i, doc.Title, doc.Text)
	}
	results.WriteString("</results>")
	writeTurn(&b, "system", results.String())

	directive := citationDirectiveAccurate
	if citationMode == "fast" {
		directive = citationDirectiveFast
	}
	writeTurn(&b, "system", directive)
	writeGenerationPrompt(&b)
	return b.String(), nil
}
