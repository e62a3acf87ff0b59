package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/midnightshuttle/storefront-core/internal/options"
)

type signatureGroup struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type signaturePayload struct {
	ProductID string           `json:"productId"`
	Options   []signatureGroup `json:"options"`
	Notes     string           `json:"notes"`
}

// computeSignature derives the merge key for a cart line: two add requests
// with the same product, options and notes must land on the same line.
// Group names and the values inside each group are sorted, and groups with
// an empty selection are dropped, so insertion order and explicit-empty
// versus absent entries can never split logically identical selections.
func computeSignature(productID string, selections options.Selections, notes string) string {
	groups := make([]signatureGroup, 0, len(selections))
	for name, values := range selections {
		if len(values) == 0 {
			continue
		}
		sorted := append([]string(nil), values...)
		sort.Strings(sorted)
		groups = append(groups, signatureGroup{Name: name, Values: sorted})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })

	raw, _ := json.Marshal(signaturePayload{
		ProductID: productID,
		Options:   groups,
		Notes:     notes,
	})
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
