package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jbdamask/botcmd/pkg/commands"
)

func isSpace(r rune) bool { return unicode.IsSpace(r) }

// strategy returns the decomposition function named by kind. Argument and
// flag keys come from the command metadata. Values are never converted:
// arguments are strings and flags are true.
func strategy(kind string, meta *commands.Metadata) (commands.DecomposeFunc, error) {
	var keys, flags []string
	if meta != nil {
		for _, a := range meta.Args {
			if a.Key != "" {
				keys = append(keys, a.Key)
			}
		}
		for _, f := range meta.Flags {
			if f.Key != "" {
				flags = append(flags, f.Key)
			}
		}
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", StrategyNone:
		return nil, nil
	case StrategyRest:
		if len(keys) == 0 {
			return nil, fmt.Errorf("decompose %q needs at least one argument key", kind)
		}
		return restDecomposer(keys[0]), nil
	case StrategyFields:
		if len(keys) == 0 && len(flags) == 0 {
			return nil, fmt.Errorf("decompose %q needs argument or flag keys", kind)
		}
		return fieldsDecomposer(keys, flags), nil
	default:
		return nil, fmt.Errorf("unknown decompose strategy %q", kind)
	}
}

// restDecomposer maps the whole remainder to a single key.
func restDecomposer(key string) commands.DecomposeFunc {
	return func(remainder string) map[string]any {
		if remainder == "" {
			return nil
		}
		return map[string]any{key: remainder}
	}
}

// fieldsDecomposer splits the remainder on whitespace. Tokens equal to a flag
// key set that flag; the others fill the argument keys in order, and the last
// key receives every remaining token.
func fieldsDecomposer(keys, flags []string) commands.DecomposeFunc {
	isFlag := make(map[string]bool, len(flags))
	for _, f := range flags {
		isFlag[f] = true
	}
	return func(remainder string) map[string]any {
		args := make(map[string]any)
		var positional []string
		for _, tok := range strings.Fields(remainder) {
			if isFlag[tok] {
				args[tok] = true
				continue
			}
			positional = append(positional, tok)
		}

		for i, key := range keys {
			if i >= len(positional) {
				break
			}
			if i == len(keys)-1 {
				args[key] = strings.Join(positional[i:], " ")
				break
			}
			args[key] = positional[i]
		}
		return args
	}
}
