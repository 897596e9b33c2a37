package knowledge

import "fmt"

// Label is one of the four diagnostic classes the model can output.
type Label string

const (
	Blight       Label = "Blight"
	CommonRust   Label = "Common Rust"
	GrayLeafSpot Label = "Gray Leaf Spot"
	Healthy      Label = "Healthy"
)

// Labels returns the class set in training order.
func Labels() []Label {
	return []Label{Blight, CommonRust, GrayLeafSpot, Healthy}
}

// ErrUnknownLabel reports a label outside the fixed class set. Labels always
// originate from the model's own class list, so hitting this means the model
// metadata and the knowledge base disagree.
type ErrUnknownLabel struct {
	Label string
}

func (e *ErrUnknownLabel) Error() string {
	return fmt.Sprintf("unknown class label: %q", e.Label)
}

// ParseLabel validates a raw class name against the fixed set.
func ParseLabel(s string) (Label, error) {
	for _, l := range Labels() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", &ErrUnknownLabel{Label: s}
}

// Disease describes one diagnostic class: what it is, how it shows, and what
// the grower should do about it.
type Disease struct {
	Info             string   `json:"info"`
	Symptoms         []string `json:"symptoms"`
	Causes           []string `json:"causes"`
	ImmediateActions []string `json:"immediate_actions"`
	Treatments       []string `json:"treatments"`
	Prevention       []string `json:"prevention"`
	Solution         string   `json:"solution"`
}

// Lookup returns the reference record for a label.
func Lookup(label Label) (Disease, error) {
	d, ok := diseases[label]
	if !ok {
		return Disease{}, &ErrUnknownLabel{Label: string(label)}
	}
	return d, nil
}
