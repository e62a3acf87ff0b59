package options

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Kind distinguishes regular option groups from the synthesized
// remove-ingredient group.
type Kind string

const (
	KindStandard         Kind = "standard"
	KindRemoveIngredient Kind = "removeIngredient"
)

// RenderKind tells the UI which control family an option group needs.
type RenderKind string

const (
	RenderSingleChoice RenderKind = "single-choice"
	RenderMultiChoice  RenderKind = "multi-choice"
)

// Choice is one selectable entry of an option group. Value is unique within
// its group. Raw keeps the untouched source record for downstream tooling.
type Choice struct {
	Label string          `json:"label"`
	Value string          `json:"value"`
	Price decimal.Decimal `json:"price"`
	Raw   json.RawMessage `json:"-"`
}

// GroupConfig is the cardinality rule and choice list of one option group.
type GroupConfig struct {
	Name     string
	Min      int
	Max      int
	Required bool
	Kind     Kind
	Choices  []Choice
}

// Selections maps option group names to the chosen values. Single-choice
// groups carry zero or one value; multi-choice groups carry any number.
type Selections map[string][]string

// Result is the outcome of validating one group's selection. Failures are
// data, never errors: the message is shown to the customer as-is.
type Result struct {
	Valid   bool
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}
