package service

import "fmt"

// Bounds for sampling parameters. Max tokens matches the model's context
// window.
const (
	MinTemperature = 0.0
	MaxTemperature = 1.0
	MinMaxTokens   = 1
	MaxMaxTokens   = 131072
)

// Citation modes accepted by grounded generation.
const (
	CitationModeFast     = "fast"
	CitationModeAccurate = "accurate"
)

// ValidateTemperature checks the sampling temperature range.
func ValidateTemperature(temperature float64) error {
	if temperature < MinTemperature || temperature > MaxTemperature {
		return &ValidationError{Message: "Temperature must be between 0.0 and 1.0"}
	}
	return nil
}

// ValidateMaxTokens checks the generation length limit.
func ValidateMaxTokens(maxTokens int) error {
	if maxTokens < MinMaxTokens || maxTokens > MaxMaxTokens {
		return &ValidationError{Message: "Max tokens must be between 1 and 131072"}
	}
	return nil
}

// ValidateCitationMode checks the grounded-generation citation mode.
func ValidateCitationMode(citationMode string) error {
	if citationMode != CitationModeFast && citationMode != CitationModeAccurate {
		return &ValidationError{Message: "Citation mode must be either 'fast' or 'accurate'"}
	}
	return nil
}

// ValidateTools checks that every tool carries a name, description and
// parameter definitions, and that every parameter definition carries a
// description, type and required flag. Tools are checked in order, then
// each tool's parameters in their declared order; the first failure wins.
func ValidateTools(tools []ToolSpec) error {
	for _, tool := range tools {
		if tool.Name == nil {
			return &ValidationError{Message: "Each tool must have a 'name' field"}
		}
		if tool.Description == nil {
			return &ValidationError{Message: "Each tool must have a 'description' field"}
		}
		if tool.ParameterDefinitions == nil {
			return &ValidationError{Message: "Each tool must have a 'parameter_definitions' field"}
		}
		for _, paramName := range tool.ParameterDefinitions.Names() {
			def, _ := tool.ParameterDefinitions.Get(paramName)
			if def.Description == nil {
				return &ValidationError{Message: fmt.Sprintf("Parameter '%s' must have a 'description' field", paramName)}
			}
			if def.Type == nil {
				return &ValidationError{Message: fmt.Sprintf("Parameter '%s' must have a 'type' field", paramName)}
			}
			if def.Required == nil {
				return &ValidationError{Message: fmt.Sprintf("Parameter '%s' must have a 'required' field", paramName)}
			}
		}
	}
	return nil
}
