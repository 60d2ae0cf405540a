package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// SkillsJSON serializes a skill list for a jsonb column.
func SkillsJSON(skills []string) datatypes.JSON {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

// SkillsFromJSON decodes a jsonb skill column. Malformed or empty
// values decode to an empty list.
func SkillsFromJSON(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return []string{}
	}
	if skills == nil {
		return []string{}
	}
	return skills
}
