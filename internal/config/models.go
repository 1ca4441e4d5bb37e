package config

import "slices"

// AddModel appends a model without formatter or confidence settings.
// Duplicate ids are accepted.
func (c *Config) AddModel(id, name, modelConfigPath string) {
	c.Models = append(c.Models, ModelConfig{
		ID:              id,
		Name:            name,
		ModelConfigPath: modelConfigPath,
	})
}

// RemoveModel drops every model whose id matches. Unknown ids are a no-op.
// An emptied list is stored as nil.
func (c *Config) RemoveModel(id string) {
	c.Models = slices.DeleteFunc(c.Models, func(m ModelConfig) bool {
		return m.ID == id
	})
	if len(c.Models) == 0 {
		c.Models = nil
	}
}

// DuplicateModelIDs lists ids that appear more than once, in first-seen order.
func (c Config) DuplicateModelIDs() []string {
	seen := make(map[string]int, len(c.Models))
	var dups []string
	for _, m := range c.Models {
		seen[m.ID]++
		if seen[m.ID] == 2 {
			dups = append(dups, m.ID)
		}
	}
	return dups
}
