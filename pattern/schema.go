package pattern

import (
	"encoding/json"
	"regexp"

	"github.com/fwojciec/seoscan"
)

var schemaRe = regexp.MustCompile(`(?is)<script[^>]*\stype\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// ExtractSchema returns every JSON-LD block that parses as JSON.
// Blocks with invalid JSON are skipped.
func ExtractSchema(html string) []seoscan.SchemaBlock {
	var blocks []seoscan.SchemaBlock
	for _, m := range schemaRe.FindAllStringSubmatch(html, -1) {
		var v any
		if err := json.Unmarshal([]byte(m[1]), &v); err != nil {
			continue
		}
		blocks = append(blocks, seoscan.SchemaBlock{Value: v})
	}
	return blocks
}
