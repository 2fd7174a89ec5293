package catalog

import (
	"encoding/json"
	"errors"
	"strings"

	"backline/internal/pkg/errs"
)

// ErrInvalidRuleData marks an accessory rule payload that could not be
// parsed. Resolution treats an invalid side the same as an absent rule
// (empty mapping); the error exists so the loading boundary can log a
// data-quality warning instead of swallowing the problem.
var ErrInvalidRuleData = errors.New("accessory rule payload is invalid")

// RuleSide is one half of an accessory rule: accessory model name to the
// base quantity required (or suggested) per rented unit of the parent model.
type RuleSide struct {
	entries map[string]int
}

type rulePayload struct {
	ModelNameToQty map[string]int `json:"model_name_to_qty"`
}

// ParseRuleSide validates a raw JSON payload of the shape
// {"model_name_to_qty": {"XLR-Cable": 1}}. A blank payload is a valid
// empty side; a malformed one yields an empty side plus ErrInvalidRuleData.
func ParseRuleSide(raw string) (RuleSide, error) {
	if strings.TrimSpace(raw) == "" {
		return RuleSide{}, nil
	}

	var payload rulePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return RuleSide{}, errs.Mark(err, ErrInvalidRuleData)
	}

	entries := make(map[string]int, len(payload.ModelNameToQty))
	for name, qty := range payload.ModelNameToQty {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || qty <= 0 {
			return RuleSide{}, errs.Wrapf(ErrInvalidRuleData, "entry %q has quantity %d", name, qty)
		}
		entries[trimmed] = qty
	}

	return RuleSide{entries: entries}, nil
}

func NewRuleSide(entries map[string]int) RuleSide {
	if len(entries) == 0 {
		return RuleSide{}
	}
	copied := make(map[string]int, len(entries))
	for name, qty := range entries {
		copied[name] = qty
	}
	return RuleSide{entries: copied}
}

func (s RuleSide) IsEmpty() bool {
	return len(s.entries) == 0
}

// Scaled multiplies every base quantity by count. Accessory demand grows
// linearly with the number of parent units rented.
func (s RuleSide) Scaled(count int) map[string]int {
	scaled := make(map[string]int, len(s.entries))
	if count <= 0 {
		return scaled
	}
	for name, qty := range s.entries {
		scaled[name] = qty * count
	}
	return scaled
}

// AccessoryRule is the single per-category accessory expansion rule.
type AccessoryRule struct {
	CategoryID int64
	Required   RuleSide
	Optional   RuleSide
}
