package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"cargoscan/internal/domain"
)

// rulesSchema constrains operator-supplied rule files. Custom rules can only
// route to document types that have an extraction table.
const rulesSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["name", "document_type"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "document_type": {
        "type": "string",
        "enum": ["Generic Invoice", "Generic Air Waybill", "Delta Freight Invoice", "Aeroflot Air Waybill"]
      },
      "require_all": {"$ref": "#/$defs/signals"},
      "require_any": {"$ref": "#/$defs/signals"}
    },
    "anyOf": [
      {"required": ["require_all"]},
      {"required": ["require_any"]}
    ]
  },
  "$defs": {
    "signals": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "substring": {"type": "string", "minLength": 1},
          "fold": {"type": "boolean"},
          "pattern": {"type": "string", "minLength": 1}
        },
        "oneOf": [
          {"required": ["substring"]},
          {"required": ["pattern"]}
        ]
      }
    }
  }
}`

type customSignal struct {
	Substring string `json:"substring"`
	Fold      bool   `json:"fold"`
	Pattern   string `json:"pattern"`
}

type customRule struct {
	Name         string         `json:"name"`
	DocumentType string         `json:"document_type"`
	RequireAll   []customSignal `json:"require_all"`
	RequireAny   []customSignal `json:"require_any"`
}

// LoadRules reads a JSON rule file, validates it against the embedded
// schema, and compiles it into classifier rules.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("rules.schema.json", strings.NewReader(rulesSchema)); err != nil {
		return nil, fmt.Errorf("adding rules schema: %w", err)
	}
	schema, err := compiler.Compile("rules.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling rules schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("rules file %s does not match schema: %w", path, err)
	}

	var raw []customRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding rules file %s: %w", path, err)
	}

	rules := make([]Rule, 0, len(raw))
	for _, cr := range raw {
		all, err := compileSignals(cr.RequireAll)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", cr.Name, err)
		}
		anyOf, err := compileSignals(cr.RequireAny)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", cr.Name, err)
		}
		rules = append(rules, Rule{
			Name:         cr.Name,
			DocumentType: domain.DocumentType(cr.DocumentType),
			RequireAll:   all,
			RequireAny:   anyOf,
		})
	}
	return rules, nil
}

func compileSignals(in []customSignal) ([]Signal, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Signal, 0, len(in))
	for _, cs := range in {
		s := Signal{Substring: cs.Substring, Fold: cs.Fold}
		if cs.Pattern != "" {
			re, err := regexp.Compile(cs.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", cs.Pattern, err)
			}
			s = Signal{Pattern: re}
		}
		out = append(out, s)
	}
	return out, nil
}
