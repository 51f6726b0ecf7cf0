package cfg

import (
	"strings"

	"mircfg/internal/pack"
)

// dotEscaper keeps opaque statement text from breaking out of a DOT
// double-quoted string.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// statementsText renders a block's statements as one label cell: one line
// per statement, joined with the DOT line-break token.
func statementsText(blk *pack.Block) string {
	lines := make([]string, 0, len(blk.Stmts))
	for _, s := range blk.Stmts {
		lines = append(lines, dotEscaper.Replace(s.Text))
	}
	return strings.Join(lines, `\n`)
}
