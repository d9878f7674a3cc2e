package schema

import (
	"strings"

	"github.com/cyberbull/startupdocs/internal/document"
)

// Kind enumerates form field kinds.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindSelect   Kind = "select"
	KindSection  Kind = "section"
)

// Field describes one form field. Section fields group sub-fields; the
// section itself carries no value.
type Field struct {
	Label       string   `json:"label"`
	Kind        Kind     `json:"kind"`
	Key         string   `json:"key"`
	Options     []string `json:"options,omitempty"`
	Default     string   `json:"default,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Children    []Field  `json:"children,omitempty"`
}

var domainOptions = []string{"IT", "EdTech", "Consumer Goods", "FinTech", "Healthcare", "Other"}

func businessName() Field {
	return Field{Label: "Business Name", Kind: KindText, Key: "business_name", Placeholder: "Enter your business name"}
}

func startupDomain() Field {
	return Field{Label: "Startup Domain", Kind: KindSelect, Key: "startup_domain", Options: domainOptions, Default: "IT"}
}

// fieldSets holds the ordered field declarations per document type.
var fieldSets = map[string][]Field{
	document.TypeBusinessPlan: {
		businessName(),
		startupDomain(),
		{Label: "Financial Data", Kind: KindSection, Key: "financial_data", Children: []Field{
			{Label: "Revenue Model", Kind: KindTextarea, Key: "revenue_model", Placeholder: "Describe the revenue model"},
			{Label: "Cost Structure", Kind: KindTextarea, Key: "cost_structure", Placeholder: "Describe the cost structure"},
			{Label: "Funding Needed (in USD)", Kind: KindNumber, Key: "funding_needed"},
		}},
		{Label: "Target Market", Kind: KindTextarea, Key: "target_market", Placeholder: "Describe your target market"},
		{Label: "Competitors", Kind: KindTextarea, Key: "competitors", Placeholder: "Who are your competitors?"},
		{Label: "Market Trends", Kind: KindTextarea, Key: "market_trends", Placeholder: "What are the current market trends?"},
	},
	document.TypeFundingProposal: {
		businessName(),
		startupDomain(),
		{Label: "Investment Opportunity", Kind: KindTextarea, Key: "investment_opportunity", Placeholder: "Describe the investment opportunity"},
		{Label: "Capital Needed (in USD)", Kind: KindNumber, Key: "capital_needed", Default: "1000"},
		{Label: "Revenue Projections", Kind: KindTextarea, Key: "revenue_projections", Placeholder: "Provide a 3-5 year revenue projection"},
	},
	document.TypePitchDeck: {
		businessName(),
		startupDomain(),
		{Label: "Business Idea", Kind: KindTextarea, Key: "business_idea", Placeholder: "What is your business idea?"},
		{Label: "Team Vision", Kind: KindTextarea, Key: "team_vision", Placeholder: "What is your team's vision for the business?"},
		{Label: "Market Opportunity", Kind: KindTextarea, Key: "market_opportunity", Placeholder: "What market opportunity are you addressing?"},
	},
	document.TypeInvestorMaterials: {
		businessName(),
		startupDomain(),
		{Label: "Investment Opportunity", Kind: KindTextarea, Key: "investment_opportunity", Placeholder: "Describe the investment opportunity"},
		{Label: "Team Background", Kind: KindTextarea, Key: "team_background", Placeholder: "Describe the background of your team members"},
		{Label: "Financial Forecast", Kind: KindTextarea, Key: "financial_forecast", Placeholder: "Provide your 3-5 year financial forecast"},
	},
	document.TypeTechnicalDocumentation: {
		{Label: "Documentation Title", Kind: KindText, Key: "doc_title", Placeholder: "Enter the title of your documentation"},
		{Label: "Key Features", Kind: KindTextarea, Key: "key_features", Placeholder: "Describe the key features of your product"},
		{Label: "Use Cases", Kind: KindTextarea, Key: "use_cases", Placeholder: "Provide a list of use cases for your product"},
		{Label: "Technical Specifications", Kind: KindTextarea, Key: "technical_specs", Placeholder: "Describe the technical specifications of your product"},
	},
	document.TypeProjectProposal: {
		{Label: "Project Name", Kind: KindText, Key: "project_name", Placeholder: "Enter your project name"},
		{Label: "Project Description", Kind: KindTextarea, Key: "project_description", Placeholder: "Describe your project"},
		{Label: "Goals and Objectives", Kind: KindTextarea, Key: "goals", Placeholder: "What are your project goals?"},
		{Label: "Timeline", Kind: KindTextarea, Key: "timeline", Placeholder: "Provide the project timeline"},
		{Label: "Market Data", Kind: KindSection, Key: "market_data", Children: []Field{
			{Label: "Target Market", Kind: KindTextarea, Key: "target_market", Placeholder: "Enter the target market details"},
			{Label: "Competitors", Kind: KindTextarea, Key: "competitors", Placeholder: "List your competitors"},
			{Label: "Market Trends", Kind: KindTextarea, Key: "market_trends", Placeholder: "Describe market trends"},
		}},
		{Label: "Capital Needed (in USD)", Kind: KindNumber, Key: "capital_needed", Default: "1000"},
	},
	document.TypeInvestmentMemorandum: {
		businessName(),
		startupDomain(),
		{Label: "Investment Highlights", Kind: KindTextarea, Key: "investment_highlights", Placeholder: "Highlight your investment opportunities"},
		{Label: "Market Opportunity", Kind: KindTextarea, Key: "market_opportunity", Placeholder: "Describe the market opportunity"},
		{Label: "Risk Analysis", Kind: KindTextarea, Key: "risk_analysis", Placeholder: "Describe the risks associated with this investment"},
	},
	document.TypeShareholderUpdate: {
		businessName(),
		{Label: "Business Progress Overview", Kind: KindTextarea, Key: "progress_overview", Placeholder: "Provide an overview of business progress"},
		{Label: "Key Achievements", Kind: KindTextarea, Key: "achievements", Placeholder: "List key achievements"},
		{Label: "Upcoming Goals", Kind: KindTextarea, Key: "upcoming_goals", Placeholder: "Describe your upcoming goals"},
		{Label: "Challenges", Kind: KindTextarea, Key: "challenges", Placeholder: "List current challenges faced by the business"},
	},
}

// FieldsFor returns the declared field list for a document type, or nil
// for an unknown type. Unknown types carry no field requirements, so
// generation for them proceeds without validation constraints.
func FieldsFor(docType string) []Field {
	fields, ok := fieldSets[document.Normalize(docType)]
	if !ok {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Flatten expands section fields into their children, preserving
// declaration order. The result contains only value-bearing fields.
func Flatten(fields []Field) []Field {
	var out []Field
	for _, f := range fields {
		if f.Kind == KindSection {
			out = append(out, f.Children...)
			continue
		}
		out = append(out, f)
	}
	return out
}

// RequiredKeys returns the value-bearing field keys for a document type in
// declaration order.
func RequiredKeys(docType string) []string {
	flat := Flatten(FieldsFor(docType))
	keys := make([]string, 0, len(flat))
	for _, f := range flat {
		keys = append(keys, f.Key)
	}
	return keys
}

// Validate returns the keys of required fields that are empty or absent,
// in declaration order. A number field set to "0" counts as unset,
// matching the completeness rule of the form layer.
func Validate(docType string, values map[string]string) []string {
	var missing []string
	for _, f := range Flatten(FieldsFor(docType)) {
		v := strings.TrimSpace(values[f.Key])
		if v == "" || (f.Kind == KindNumber && v == "0") {
			missing = append(missing, f.Key)
		}
	}
	return missing
}
