// Package projects discovers per-project README files under a project root.
// A project is an immediate subdirectory of the root; its README.md, when
// present, is the project's content. Directories without a README are a
// designed skip, not a failure.
package projects

// Project pairs a project directory name with the raw text of its README.
type Project struct {
	Name   string `json:"name" yaml:"name"`
	Readme string `json:"-" yaml:"-"`
}

// Size returns the README length in bytes.
func (p Project) Size() int {
	return len(p.Readme)
}

// Load scans root and reads the README of every project directory that has
// one, in lexicographic directory-name order. Directories without a README
// are excluded from the result.
func Load(root string) ([]Project, error) {
	dirs, err := Scan(root)
	if err != nil {
		return nil, err
	}

	var result []Project
	for _, dir := range dirs {
		content, ok, err := ReadReadme(dir.Path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		result = append(result, Project{Name: dir.Name, Readme: content})
	}

	return result, nil
}
