package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/wisklang/wisk/lexer"
	"github.com/wisklang/wisk/parser"
)

// TestProgramFixtures runs a handful of small Wisk programs end to end and
// snapshots their printed output, grounded on go-dws's fixture-driven
// TestDWScriptFixtures — narrowed to an inline table since Wisk has no
// on-disk test corpus to walk.
func TestProgramFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "fibonacci",
			src: `
fun fib(n) {
	if (n < 2) return n;
	return fib(n - 1) + fib(n - 2);
}
var i = 0;
while (i < 8) {
	print fib(i);
	i = i + 1;
}
`,
		},
		{
			name: "fizzbuzz",
			src: `
for (var i = 1; i <= 15; i = i + 1) {
	if (i == 15) { print "fizzbuzz"; }
	else if (i == 3 or i == 6 or i == 9 or i == 12) { print "fizz"; }
	else if (i == 5 or i == 10) { print "buzz"; }
	else { print i; }
}
`,
		},
		{
			name: "function-reads-global",
			src: `
var greeting = "hello";
fun greet() {
	return greeting;
}
print greet();
`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			program, err := parser.Parse(lexer.New(f.name, f.src))
			require.NoError(t, err)

			var out bytes.Buffer
			it := New()
			it.Out = &out
			_, err = it.Interpret(program)
			require.NoError(t, err)

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
