package dto

// TableDocument is the wire shape of a user-supplied transition table
// definition. It uses "mapstructure" tags so the generic YAML document can
// be decoded with unused-key checking before compilation into a
// protocol.Table.
type TableDocument struct {
	Rules     []RuleDocument `json:"rules" mapstructure:"rules"`
	Start     string         `json:"start" mapstructure:"start"`
	Accepting []string       `json:"accepting" mapstructure:"accepting"`
}

// RuleDocument is one table entry, all fields as canonical identifiers.
type RuleDocument struct {
	From   string `json:"from" mapstructure:"from"`
	Symbol string `json:"symbol" mapstructure:"symbol"`
	To     string `json:"to" mapstructure:"to"`
}
