package openai

import "github.com/invopop/jsonschema"

// Lead is the contact information the assistant extracts when a visitor
// wants to be called back. The jsonschema tags drive the tool schema sent
// to the model.
type Lead struct {
	// Name is how the visitor introduced themselves
	Name string `json:"name" jsonschema_description:"Nombre de la persona interesada"`
	// Phone is the callback number
	Phone string `json:"phone" jsonschema_description:"Teléfono de contacto que entregó la persona"`
	// Email is optional
	Email string `json:"email,omitempty" jsonschema_description:"Correo electrónico, si lo mencionó"`
	// Interest summarizes what the visitor asked about
	Interest string `json:"interest,omitempty" jsonschema_description:"Servicio o motivo de interés"`
}

// GenerateSchema creates a JSON schema for the given type T. It produces a
// strict schema without references for compatibility with OpenAI's API.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

// LeadSchema is the pre-generated JSON schema for Lead.
var LeadSchema = GenerateSchema[Lead]()
