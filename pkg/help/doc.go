// Package help implements the /help protocol core: an immutable registry
// mapping topics to markdown documentation, and a case-insensitive
// substring search across every entry.
//
// A registry is built once, usually from a manifest and a set of markdown
// files (see Load), and is read-only afterwards so it can be shared between
// goroutines without locking:
//
//	reg, err := help.Load(embedded.FS)
//	if err != nil {
//		return err
//	}
//	entry, _ := reg.Get("auth")
//	fmt.Print(entry.Content)
//
//	results := help.Search(reg, "token")
//	fmt.Print(results.String())
//
// The distinguished topic "root" is the discovery document. It is served at
// /help, every other topic t at /t/help.
package help
