package assets

import "fmt"

// Bundle is everything the browser host installs into a page.
type Bundle struct {
	Name   string
	Page   string // empty when the host enhances an external URL
	Script string
	Style  string
}

// LoadBundle loads the page, script and style sharing name. The page is
// skipped when withPage is false.
func LoadBundle(l AssetLoader, name string, withPage bool) (*Bundle, error) {
	b := &Bundle{Name: name}

	var err error
	if b.Script, err = l.LoadScript(name); err != nil {
		return nil, fmt.Errorf("loading bundle %q: %w", name, err)
	}
	if b.Style, err = l.LoadStyle(name); err != nil {
		return nil, fmt.Errorf("loading bundle %q: %w", name, err)
	}
	if !withPage {
		return b, nil
	}
	if b.Page, err = l.LoadPage(name); err != nil {
		return nil, fmt.Errorf("loading bundle %q: %w", name, err)
	}
	if err := ValidatePage(b.Page); err != nil {
		return nil, fmt.Errorf("loading bundle %q: %w", name, err)
	}
	return b, nil
}
