package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the persisted shape of ExtractedData. The pipeline
// validates every record against it before writing extracted_json.
func BuildExtractionJSONSchema() map[string]any {
	partyProps := map[string]any{
		"name":           map[string]any{"type": "string"},
		"address":        map[string]any{"type": "string"},
		"phone":          map[string]any{"type": "string"},
		"email":          map[string]any{"type": "string"},
		"tax_id":         map[string]any{"type": "string"},
		"account_number": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":     "object",
		"required": []string{"parties", "financial_details", "payment_structure", "revenue_classification", "sla_terms", "gap_analysis", "confidence_score"},
		"properties": map[string]any{
			"parties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"service_provider": map[string]any{"type": "object", "properties": partyProps},
					"customer":         map[string]any{"type": "object", "properties": partyProps},
				},
			},
			"financial_details": map[string]any{
				"type":     "object",
				"required": []string{"total_monthly", "total_one_time", "currency"},
				"properties": map[string]any{
					"total_monthly":         map[string]any{"type": "number", "minimum": 0},
					"total_one_time":        map[string]any{"type": "number", "minimum": 0},
					"annual_contract_value": map[string]any{"type": "number", "minimum": 0},
					"currency":              map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
				},
			},
			"payment_structure":      map[string]any{"type": "object"},
			"account_info":           map[string]any{"type": "object"},
			"revenue_classification": map[string]any{
				"type":     "object",
				"required": []string{"type"},
				"properties": map[string]any{
					"type": map[string]any{"type": "string", "enum": []string{"recurring", "one-time", "mixed"}},
				},
			},
			"sla_terms": map[string]any{
				"type":     "object",
				"required": []string{"response_times", "service_credits"},
				"properties": map[string]any{
					"response_times": map[string]any{
						"type":     "object",
						"required": []string{"critical", "high", "medium", "low"},
					},
					"service_credits": map[string]any{"type": "array"},
				},
			},
			"gap_analysis": map[string]any{
				"type":     "object",
				"required": []string{"missing_fields", "incomplete_fields"},
			},
			"confidence_score": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
