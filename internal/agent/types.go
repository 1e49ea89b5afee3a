package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"conversational-todo/internal/model"
)

// Skill represents one capability the agent can dispatch a message to.
type Skill interface {
	// Name returns the skill name (used for dispatch).
	Name() string

	// Description returns what the skill does.
	Description() string

	// InputSchema returns the JSON schema for the skill's parameters.
	InputSchema() map[string]interface{}

	// Execute runs the skill with the extracted parameters. Failures are
	// reported inside the Result; Execute never breaks the conversation.
	Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) Result
}

// Result is the outcome of one skill execution.
type Result struct {
	Success bool
	Message string
	Data    map[string]interface{}
	Error   string
}

// SkillRegistry manages available skills keyed by name.
type SkillRegistry struct {
	skills  map[string]Skill
	schemas map[string]*jsonschema.Schema
}

// NewSkillRegistry creates an empty skill registry.
func NewSkillRegistry() *SkillRegistry {
	return &SkillRegistry{
		skills:  make(map[string]Skill),
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register adds a skill to the registry. The skill's input schema is
// compiled here so a malformed schema fails at startup, not mid-chat.
func (r *SkillRegistry) Register(skill Skill) error {
	name := skill.Name()
	if name == "" {
		return ErrInvalidSkillName
	}
	if _, ok := r.skills[name]; ok {
		return fmt.Errorf("%w: %s", ErrSkillAlreadyRegistered, name)
	}

	schema, err := compileSchema(name, skill.InputSchema())
	if err != nil {
		return fmt.Errorf("skill %s: %w", name, err)
	}

	r.skills[name] = skill
	r.schemas[name] = schema
	return nil
}

// Get retrieves a skill by name.
func (r *SkillRegistry) Get(name string) (Skill, bool) {
	skill, ok := r.skills[name]
	return skill, ok
}

// List returns all registered skills sorted by name.
func (r *SkillRegistry) List() []Skill {
	skills := make([]Skill, 0, len(r.skills))
	for _, skill := range r.skills {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name() < skills[j].Name() })
	return skills
}

// ValidateParameters checks params against the skill's schema requirements.
// Only required-key presence is enforced; skills stay permissive about
// extra keys and value shapes and coerce what they can.
func (r *SkillRegistry) ValidateParameters(name string, params map[string]interface{}) error {
	skill, ok := r.skills[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSkillNotFound, name)
	}

	var missing []string
	for _, key := range requiredKeys(skill.InputSchema()) {
		if v, ok := params[key]; !ok || v == nil {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingParameters, missing)
	}
	return nil
}

// compileSchema compiles a schema map through jsonschema so malformed
// definitions are rejected eagerly.
func compileSchema(name string, schema map[string]interface{}) (*jsonschema.Schema, error) {
	if schema == nil {
		schema = map[string]interface{}{}
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal input schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	url := name + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add input schema: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile input schema: %w", err)
	}
	return compiled, nil
}

// requiredKeys reads the "required" list out of a schema map.
func requiredKeys(schema map[string]interface{}) []string {
	var keys []string
	switch req := schema["required"].(type) {
	case []string:
		keys = append(keys, req...)
	case []interface{}:
		for _, k := range req {
			if s, ok := k.(string); ok {
				keys = append(keys, s)
			}
		}
	}
	return keys
}
