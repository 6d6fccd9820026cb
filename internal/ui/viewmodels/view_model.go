package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"suggestbox/internal/config"
	"suggestbox/internal/ui/state"
	"suggestbox/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	store            *state.Store
	config           *config.Config
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	status           string
	focusedDelete    int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(store *state.Store, cfg *config.Config, query, field textinput.Model) *ViewModel {
	return &ViewModel{
		store:            store,
		config:           cfg,
		focusedDelete:    -1,
		inputTransformer: NewInputTransformer(query, field),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the key map it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetStatus sets the status line message
func (vm *ViewModel) SetStatus(msg string) {
	vm.status = msg
}

// Status returns the status line message
func (vm *ViewModel) Status() string {
	return vm.status
}

// SetFocusedDelete sets the delete control with focus, -1 for none
func (vm *ViewModel) SetFocusedDelete(index int) {
	vm.focusedDelete = index
}

// UpdateTextInputs updates the text input models
func (vm *ViewModel) UpdateTextInputs(query, field textinput.Model) {
	vm.inputTransformer.Update(query, field)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.store.State()
	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		BoxWidth:      vm.config.UI.Width,
		MaxRows:       vm.config.UI.MaxRows,
		QueryText:     vm.inputTransformer.GetQueryText(),
		FieldText:     vm.inputTransformer.GetFieldText(),
		QueryFocused:  vm.inputTransformer.QueryFocused(),
		FieldFocused:  vm.inputTransformer.FieldFocused(),
		Suggestions:   s.Suggestions,
		Highlighted:   s.Highlighted,
		SelectedList:  s.SelectedList,
		FocusedDelete: vm.focusedDelete,
		StatusMessage: vm.status,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
}
