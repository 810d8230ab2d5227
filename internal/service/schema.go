package service

type SchemaType string

const (
	SchemaTypeArray   SchemaType = "array"
	SchemaTypeObject  SchemaType = "object"
	SchemaTypeString  SchemaType = "string"
	SchemaTypeInteger SchemaType = "integer"
)

// Schema is a provider-neutral description of the JSON a structured request must return.
// Providers translate it to their native response-schema format or to prompt instructions.
type Schema struct {
	Type        SchemaType
	Description string
	Items       *Schema
	Properties  map[string]*Schema
	// Order lists property names in the order they should be emitted.
	Order    []string
	Required []string
}

func recommendationSchema() *Schema {
	stringList := func(desc string) *Schema {
		return &Schema{Type: SchemaTypeArray, Items: &Schema{Type: SchemaTypeString}, Description: desc}
	}
	order := []string{"id", "name", "level", "description", "matchScore", "matchReason", "careerOpportunities", "keySubjects"}
	return &Schema{
		Type: SchemaTypeArray,
		Items: &Schema{
			Type: SchemaTypeObject,
			Properties: map[string]*Schema{
				"id":                  {Type: SchemaTypeString},
				"name":                {Type: SchemaTypeString, Description: "Naam van de opleiding"},
				"level":               {Type: SchemaTypeString, Description: "Niveau: HBO of WO"},
				"description":         {Type: SchemaTypeString, Description: "Korte beschrijving van de studie"},
				"matchScore":          {Type: SchemaTypeInteger, Description: "Score tussen 0 en 100"},
				"matchReason":         {Type: SchemaTypeString, Description: "Waarom past dit bij de leerling?"},
				"careerOpportunities": stringList("Mogelijke beroepen na deze studie"),
				"keySubjects":         stringList("Belangrijke vakken tijdens de studie"),
			},
			Order:    order,
			Required: order,
		},
	}
}
