package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

const sampleInventory = `country,code,product,cost,quantity
ZA,C1,Air Max,100.00,5
ZA,C2,Pegasus,50.00,2
Vietnam,V1,Air Force 1,80.50,10
`

// setup points the app to a temporary inventory file holding content, or to a
// missing file if content is empty. Reports are captured in the returned buffer.
func setup(t *testing.T, content string) (path string, out *bytes.Buffer) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "inventory.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write inventory: %v", err)
		}
	}

	oldFile, oldCurrency, oldPlain, oldStrict, oldStdout := inventoryFile, currency, plain, strict, stdout
	out = &bytes.Buffer{}
	inventoryFile, currency, plain, strict, stdout = path, inventory.DefaultCurrency, true, false, out
	t.Cleanup(func() {
		inventoryFile, currency, plain, strict, stdout = oldFile, oldCurrency, oldPlain, oldStrict, oldStdout
	})
	return path, out
}

// run executes a subcommand with args.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(b)
}
