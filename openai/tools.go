package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/rs/zerolog/log"
)

// captureLeadTool lets the model hand over a visitor's contact details when
// they ask to be contacted or want to close a reservation with a human.
var captureLeadTool = openai.ChatCompletionToolParam{
	Function: openai.FunctionDefinitionParam{
		Name:        "capture_lead",
		Description: openai.String("Registra los datos de contacto de una persona interesada para que el negocio la contacte."),
		Parameters:  functionParameters(LeadSchema),
	},
}

// functionParameters converts a reflected jsonschema into the map shape the
// chat completions API expects.
func functionParameters(schema any) openai.FunctionParameters {
	data, err := json.Marshal(schema)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal tool schema")
	}
	var params openai.FunctionParameters
	if err := json.Unmarshal(data, &params); err != nil {
		log.Fatal().Err(err).Msg("Failed to build tool parameters")
	}
	return params
}

// parseLead decodes a capture_lead tool call's arguments. A lead without a
// phone number is useless to the owner and is dropped.
func parseLead(arguments string) *Lead {
	var lead Lead
	if err := json.Unmarshal([]byte(arguments), &lead); err != nil {
		log.Error().Err(err).Msg("Error parsing capture_lead arguments")
		return nil
	}
	if lead.Phone == "" {
		return nil
	}
	return &lead
}
