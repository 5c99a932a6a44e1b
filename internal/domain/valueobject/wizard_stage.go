package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// WizardStage – immutable value object
// ---------------------------------------------------------------------------

// WizardStage identifies a step of the borrower application wizard. The
// zero-based index is what gets persisted as the stage pointer so a session
// can resume mid-flow.
type WizardStage struct {
	value string
	index int
}

const (
	wizardStageBasicInfo   = "BASIC_INFO"
	wizardStageContactInfo = "CONTACT_INFO"
	wizardStageDocuments   = "DOCUMENTS"
	wizardStageSuccess     = "SUCCESS"
)

var (
	WizardStageBasicInfo   = WizardStage{value: wizardStageBasicInfo, index: 0}
	WizardStageContactInfo = WizardStage{value: wizardStageContactInfo, index: 1}
	WizardStageDocuments   = WizardStage{value: wizardStageDocuments, index: 2}
	WizardStageSuccess     = WizardStage{value: wizardStageSuccess, index: 3}
)

var wizardStagesByIndex = []WizardStage{
	WizardStageBasicInfo,
	WizardStageContactInfo,
	WizardStageDocuments,
	WizardStageSuccess,
}

// NewWizardStageFromIndex resolves a persisted stage pointer to a stage.
func NewWizardStageFromIndex(i int) (WizardStage, error) {
	if i < 0 || i >= len(wizardStagesByIndex) {
		return WizardStage{}, fmt.Errorf("invalid wizard stage index: %d", i)
	}
	return wizardStagesByIndex[i], nil
}

// NewWizardStage creates a WizardStage from a raw string.
func NewWizardStage(s string) (WizardStage, error) {
	for _, st := range wizardStagesByIndex {
		if st.value == s {
			return st, nil
		}
	}
	return WizardStage{}, fmt.Errorf("invalid wizard stage: %q", s)
}

// String returns the string representation of the stage.
func (s WizardStage) String() string { return s.value }

// Index returns the zero-based stage pointer value.
func (s WizardStage) Index() int { return s.index }

// IsZero returns true if the stage has not been initialised.
func (s WizardStage) IsZero() bool { return s.value == "" }

// Equal returns true when both stages carry the same value.
func (s WizardStage) Equal(other WizardStage) bool { return s.value == other.value }

// Next returns the stage the wizard advances to on successful completion
// of this stage.
func (s WizardStage) Next() (WizardStage, error) {
	if s.index >= len(wizardStagesByIndex)-1 {
		return WizardStage{}, fmt.Errorf("wizard stage %s has no next stage", s.value)
	}
	return wizardStagesByIndex[s.index+1], nil
}

// Previous returns the stage reached by backward navigation. Going back is
// only possible from CONTACT_INFO and DOCUMENTS; it is never validated.
func (s WizardStage) Previous() (WizardStage, error) {
	switch s {
	case WizardStageContactInfo, WizardStageDocuments:
		return wizardStagesByIndex[s.index-1], nil
	default:
		return WizardStage{}, fmt.Errorf("cannot navigate back from wizard stage %s", s.value)
	}
}
