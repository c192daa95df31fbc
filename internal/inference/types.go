package inference

// Message is a single role-tagged turn in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Document is a source document supplied for grounded generation.
type Document struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Parameter describes one typed parameter of a tool.
type Parameter struct {
	Name        string
	Description string
	Type        string
	Required    bool
}

// Tool is a callable capability offered to the model for tool-use
// generation. Parameters keep their declaration order.
type Tool struct {
	Name        string
	Description string
	Parameters  []Parameter
}

// GenerateOptions holds sampling parameters for a generation call.
// A nil *GenerateOptions leaves sampling to the inference server's defaults.
type GenerateOptions struct {
	// Temperature controls the randomness of the output (0.0 to 1.0).
	Temperature float64

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int
}
