// Command patterncli is an interactive shell over a trie.Trie: add,
// remove, subscribe, unsubscribe, match, list, stats, save, and load
// patterns, either interactively or from a batch script.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/arloliu/varind/trie"
)

func main() {
	testMode := flag.Bool("test", false, "run a built-in self-check and exit")
	batchFile := flag.String("batch", "", "run commands from file (or stdin if empty) instead of interactively")
	flag.Parse()

	if *testMode {
		runSelfCheck()
		return
	}

	t := trie.New()

	if batchFlagSet() {
		runBatch(t, *batchFile)
		return
	}

	runInteractive(t)
}

func batchFlagSet() bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "batch" {
			found = true
		}
	})
	return found
}

func runInteractive(t *trie.Trie) {
	fmt.Println("patterncli — type 'help' for commands, 'quit' to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if shouldQuit := runLine(t, line); shouldQuit {
			return
		}
	}
}

func runBatch(t *trie.Trie, path string) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("cannot open file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if runLine(t, line) {
			return
		}
	}
}

// runLine executes one command line, printing a single ✓/✗ result line.
// Returns true if the command was "quit".
func runLine(t *trie.Trie, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "add", "subscribe":
		cmdSubscribe(t, args)
	case "remove", "unsubscribe":
		cmdUnsubscribe(t, args)
	case "match":
		cmdMatch(t, args)
	case "list":
		cmdList(t)
	case "stats":
		cmdStats(t)
	case "save":
		cmdSave(t, args)
	case "load":
		cmdLoad(t, args)
	default:
		fmt.Printf("✗ unknown command %q\n", cmd)
	}

	return false
}

func printHelp() {
	fmt.Println(`commands:
  add <pattern> <name>          subscribe name under pattern
  remove <pattern> <name>       unsubscribe name from pattern
  match <input>                 list subscribers matching input
  list                          list all patterns with subscribers
  stats                         show node/pattern/subscriber counts
  save <file>                   persist the trie to file
  load <file>                   replace the trie with file's contents
  help                          show this message
  quit                          exit`)
}

func cmdSubscribe(t *trie.Trie, args []string) {
	if len(args) != 2 {
		fmt.Println("✗ usage: add <pattern> <name>")
		return
	}
	pattern, name := args[0], args[1]
	sub := trie.Subscriber{ID: trie.SubscriberID(name), Name: name}
	if err := t.Subscribe(pattern, sub); err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	fmt.Printf("✓ subscribed %s to %s\n", name, pattern)
}

func cmdUnsubscribe(t *trie.Trie, args []string) {
	if len(args) != 2 {
		fmt.Println("✗ usage: remove <pattern> <name>")
		return
	}
	pattern, name := args[0], args[1]
	ok, err := t.Unsubscribe(pattern, trie.SubscriberID(name))
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	if !ok {
		fmt.Printf("✗ no such subscriber %s on %s\n", name, pattern)
		return
	}
	fmt.Printf("✓ removed %s from %s\n", name, pattern)
}

func cmdMatch(t *trie.Trie, args []string) {
	if len(args) != 1 {
		fmt.Println("✗ usage: match <input>")
		return
	}
	subs, err := t.Match(args[0])
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.Name
	}
	fmt.Printf("✓ %d match(es): %s\n", len(subs), strings.Join(names, ", "))
}

func cmdList(t *trie.Trie) {
	patterns := t.List()
	fmt.Printf("✓ %d pattern(s): %s\n", len(patterns), strings.Join(patterns, ", "))
}

func cmdStats(t *trie.Trie) {
	s := t.Stats()
	fmt.Printf("✓ nodes=%d patterns=%d subscribers=%d\n", s.NodeCount, s.PatternCount, s.SubscriberCount)
}

func cmdSave(t *trie.Trie, args []string) {
	if len(args) != 1 {
		fmt.Println("✗ usage: save <file>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	defer f.Close()

	if err := t.Save(f); err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	fmt.Printf("✓ saved to %s\n", args[0])
}

func cmdLoad(t *trie.Trie, args []string) {
	if len(args) != 1 {
		fmt.Println("✗ usage: load <file>")
		return
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	defer f.Close()

	loaded, err := trie.Load(f)
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}
	*t = *loaded
	fmt.Printf("✓ loaded from %s\n", args[0])
}

func runSelfCheck() {
	t := trie.New()
	checks := []struct {
		name string
		fn   func() bool
	}{
		{"subscribe and match", func() bool {
			_ = t.Subscribe("a.b", trie.Subscriber{ID: 1, Name: "x"})
			subs, _ := t.Match("a.b")
			return len(subs) == 1 && subs[0].ID == 1
		}},
		{"wildcard star matches one segment", func() bool {
			_ = t.Subscribe("a.*", trie.Subscriber{ID: 2, Name: "y"})
			subs, _ := t.Match("a.c")
			return len(subs) == 1 && subs[0].ID == 2
		}},
		{"hash matches zero or more segments", func() bool {
			_ = t.Subscribe("a.#", trie.Subscriber{ID: 3, Name: "z"})
			subs, _ := t.Match("a")
			found := false
			for _, s := range subs {
				if s.ID == 3 {
					found = true
				}
			}
			return found
		}},
		{"unsubscribe is a negative result on miss", func() bool {
			ok, _ := t.Unsubscribe("no.such", 999)
			return !ok
		}},
	}

	failed := 0
	for _, c := range checks {
		if c.fn() {
			fmt.Printf("✓ %s\n", c.name)
		} else {
			fmt.Printf("✗ %s\n", c.name)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
