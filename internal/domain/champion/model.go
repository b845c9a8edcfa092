package champion

import "fmt"

// Champion is a playable character. ID is the slug derived from Name, so two
// differently cased occurrences of the same champion collapse to one row.
type Champion struct {
	ID   string
	Name string
}

func (c Champion) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("champion id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("champion name is required")
	}
	return nil
}
