package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NormalizeArgs inserts "--" before the first negative number so that
// "pushswap -3 1 2" reaches the solver instead of the flag parser. A
// negative number that is the value of a flag, as in "--budget -1", is left
// alone. Arguments already containing "--" are returned unchanged.
func NormalizeArgs(args []string) []string {
	return normalizeArgs(rootCmd, args)
}

func normalizeArgs(root *cobra.Command, args []string) []string {
	expectValue := false
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if expectValue {
			expectValue = false
			continue
		}
		if isNegativeNumber(arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") && !strings.Contains(arg, "=") {
			expectValue = takesValue(root, arg)
		}
	}
	return args
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	// A quoted list such as "-3 1 2" counts when its first field does.
	field := strings.Fields(arg)[0]
	_, err := strconv.Atoi(field)
	return err == nil
}

// takesValue reports whether the flag named by arg expects a separate value
// on any command of the tree.
func takesValue(root *cobra.Command, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	long := strings.HasPrefix(arg, "--")

	found := false
	var visit func(c *cobra.Command)
	visit = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.LocalFlags(), c.PersistentFlags()} {
			var f *pflag.Flag
			if long {
				f = fs.Lookup(name)
			} else if len(name) == 1 {
				f = fs.ShorthandLookup(name)
			}
			if f != nil && f.NoOptDefVal == "" {
				found = true
			}
		}
		for _, sub := range c.Commands() {
			visit(sub)
		}
	}
	visit(root)
	return found
}
