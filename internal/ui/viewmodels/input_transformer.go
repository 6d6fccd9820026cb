package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputTransformer turns the text input models into their rendered form
type InputTransformer struct {
	query textinput.Model
	field textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(query, field textinput.Model) *InputTransformer {
	return &InputTransformer{
		query: query,
		field: field,
	}
}

// Update replaces the models rendered by the transformer
func (it *InputTransformer) Update(query, field textinput.Model) {
	it.query = query
	it.field = field
}

// GetQueryText returns the rendered query input
func (it *InputTransformer) GetQueryText() string {
	return it.query.View()
}

// GetFieldText returns the rendered plain field input
func (it *InputTransformer) GetFieldText() string {
	return it.field.View()
}

// QueryFocused reports whether the query input shows a cursor
func (it *InputTransformer) QueryFocused() bool {
	return it.query.Focused()
}

// FieldFocused reports whether the plain field shows a cursor
func (it *InputTransformer) FieldFocused() bool {
	return it.field.Focused()
}
