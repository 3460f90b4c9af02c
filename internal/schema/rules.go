package schema

import (
	"github.com/vk/bsv/internal/entityref"
)

// The structs below mirror the parts of an entity that carry validation
// rules. The yaml tag is used as the field name in reported paths.

type metadataRules struct {
	Name      string      `yaml:"name" validate:"required,max=63,entityname"`
	Namespace string      `yaml:"namespace" validate:"omitempty,max=63,entityname"`
	Tags      []string    `yaml:"tags" validate:"dive,max=63,tagname"`
	Links     []linkRules `yaml:"links" validate:"dive"`
}

type linkRules struct {
	URL string `yaml:"url" validate:"required,url"`
}

type componentRules struct {
	Type      string         `yaml:"type" validate:"required"`
	Lifecycle string         `yaml:"lifecycle" validate:"required"`
	Owner     *entityref.Ref `yaml:"owner" validate:"required"`
}

type apiRules struct {
	Type       string         `yaml:"type" validate:"required"`
	Lifecycle  string         `yaml:"lifecycle" validate:"required"`
	Owner      *entityref.Ref `yaml:"owner" validate:"required"`
	Definition any            `yaml:"definition" validate:"required"`
}

type resourceRules struct {
	Type  string         `yaml:"type" validate:"required"`
	Owner *entityref.Ref `yaml:"owner" validate:"required"`
}

type ownedRules struct {
	Owner *entityref.Ref `yaml:"owner" validate:"required"`
}

type groupRules struct {
	Type string `yaml:"type" validate:"required"`
}

type locationRules struct {
	Target  string   `yaml:"target" validate:"required_without=Targets"`
	Targets []string `yaml:"targets"`
}

// usedFields lists the reference fields each well-known kind reads.
var usedFields = map[entityref.Kind][]string{
	entityref.KindComponent: {"owner", "system", "dependsOn", "providesApis", "consumesApis"},
	entityref.KindAPI:       {"owner", "system"},
	entityref.KindResource:  {"owner", "system", "dependsOn"},
	entityref.KindSystem:    {"owner", "domain"},
	entityref.KindDomain:    {"owner"},
	entityref.KindGroup:     {"parent", "children"},
	entityref.KindUser:      {"memberOf"},
	entityref.KindLocation:  {},
}
