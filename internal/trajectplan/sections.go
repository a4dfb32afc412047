package trajectplan

import "trajectplan-backend/internal/llm"

// SectionConfig parameterizes one report section: which document categories
// feed it, the instruction text, and the expected output shape. A nil Schema
// means the section produces prose.
type SectionConfig struct {
	Name             string
	WantedCategories []string
	Prompt           string
	Schema           *llm.Schema
	// AuthoritativeFields names fields whose on-file values, when filled,
	// take precedence over freshly generated ones.
	AuthoritativeFields []string
}

// sectionRegistry holds the report sections in generation order.
var sectionRegistry = []SectionConfig{
	{
		Name:             "persoonsgegevens",
		WantedCategories: []string{CategoryIntake},
		Prompt: "Je bent een arbeidsdeskundig rapporteur. Haal uit de aangeleverde " +
			"intaketekst de persoonsgegevens van de werknemer.",
		Schema: &llm.Schema{Fields: []llm.Field{
			{Name: "naam", Type: llm.FieldString, Description: "volledige naam van de werknemer"},
			{Name: "geboortedatum", Type: llm.FieldString, Description: "datum als DD-MM-JJJJ"},
			{Name: "functie", Type: llm.FieldString, Description: "huidige functie"},
			{Name: "werkgever", Type: llm.FieldString, Description: "naam van de werkgever"},
			{Name: "eerste_ziektedag", Type: llm.FieldString, Description: "datum als DD-MM-JJJJ"},
		}},
		AuthoritativeFields: []string{"naam", "geboortedatum"},
	},
	{
		Name:             "arbeidsdeskundige_analyse",
		WantedCategories: []string{CategoryAssessment},
		Prompt: "Vat de arbeidsdeskundige analyse samen: oorzaak van uitval, " +
			"huidige stand van de re-integratie en het advies van de arbeidsdeskundige.",
		Schema: &llm.Schema{Fields: []llm.Field{
			{Name: "oorzaak_uitval", Type: llm.FieldString, Description: "korte omschrijving, geen diagnose"},
			{Name: "eigen_werk_passend", Type: llm.FieldBool, Description: "is het eigen werk nog passend"},
			{Name: "advies_arbeidsdeskundige", Type: llm.FieldString},
		}},
	},
	{
		Name:             "belastbaarheid",
		WantedCategories: []string{CategoryCapability, CategoryAssessment},
		Prompt: "Beschrijf de belastbaarheid van de werknemer op basis van het " +
			"inzetbaarheidsprofiel of de functionele mogelijkhedenlijst.",
		Schema: &llm.Schema{Fields: []llm.Field{
			{Name: "belastbaarheid_samenvatting", Type: llm.FieldString},
			{Name: "uren_per_week", Type: llm.FieldInt, Description: "inzetbare uren per week", Min: 0, Max: 40},
			{Name: "urenbeperking", Type: llm.FieldBool, Description: "geldt er een urenbeperking"},
		}},
	},
	{
		Name: "visie_werknemer",
		Prompt: "Beschrijf in twee of drie alinea's de visie van de werknemer op de " +
			"re-integratie, op basis van alle beschikbare documenten. Schrijf in de " +
			"derde persoon en citeer niet letterlijk.",
	},
	{
		Name: "advies",
		Prompt: "Formuleer een concreet re-integratieadvies (spoor 1 en spoor 2) op " +
			"basis van alle beschikbare documenten.",
	},
}

// SectionByName looks up a section configuration.
func SectionByName(name string) (SectionConfig, bool) {
	for _, section := range sectionRegistry {
		if section.Name == name {
			return section, true
		}
	}
	return SectionConfig{}, false
}

// SectionNames returns the registered section names in generation order.
func SectionNames() []string {
	out := make([]string, 0, len(sectionRegistry))
	for _, section := range sectionRegistry {
		out = append(out, section.Name)
	}
	return out
}
