// cmd/gearbox/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"gearbox/internal/array"
	"gearbox/internal/btree"
	"gearbox/internal/bytestring"
	"gearbox/internal/regex"
)

const version = "0.1.0"

// commandAliases mirrors the one-letter shortcuts the underlying
// container/demo commands are known by.
var commandAliases = map[string]string{
	"a": "array",
	"t": "btree",
	"r": "regex",
	"s": "string",
}

func main() {
	dispatch(os.Args[1:])
}

// dispatch runs the command named by args, factored out of main so the
// testscript harness can invoke it as a subprocess command.
func dispatch(args []string) {
	if len(args) == 0 {
		showUsage()
		return
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		if len(args) > 1 {
			showCommandHelp(args[1])
		} else {
			showUsage()
		}
	case "--version", "-v", "version":
		showVersion()
	case "array":
		runArray(args[1:])
	case "btree":
		runBtree(args[1:])
	case "regex":
		runRegex(args[1:])
	case "string":
		runString(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		showUsage()
		os.Exit(1)
	}
}

// runArray pushes each argument, parsed as an int, onto an Array and
// prints its contents alongside length/capacity.
func runArray(args []string) {
	if len(args) == 0 {
		log.Fatal("array: need at least one integer argument")
	}
	a := array.New[int](nil)
	for _, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("array: %q is not an integer: %v", s, err)
		}
		a.Push(n)
	}
	fmt.Printf("len=%s cap=%s\n", humanize.Comma(int64(a.Len())), humanize.Comma(int64(a.Capacity())))
	fmt.Println(a.Slice())
}

// runBtree inserts each "key=value" pair into a Tree[string,string] and
// prints an in-order walk.
func runBtree(args []string) {
	if len(args) == 0 {
		log.Fatal("btree: need at least one key=value argument")
	}
	t := btree.New[string, string](strings.Compare, nil, nil)
	for _, kv := range args {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("btree: %q is not key=value", kv)
		}
		t.Insert(parts[0], parts[1])
	}
	fmt.Printf("entries: %s\n", humanize.Comma(int64(t.Len())))
	t.Each(func(k, v string) {
		fmt.Printf("  %s = %s\n", k, v)
	})
}

// runRegex compiles args[0] as a pattern and matches it against args[1],
// printing whether it matched and any captures.
func runRegex(args []string) {
	if len(args) != 2 {
		log.Fatal("regex: usage: gearbox regex <pattern> <haystack>")
	}
	re, err := regex.Compile(args[0])
	if err != nil {
		log.Fatalf("regex: %v", err)
	}
	caps, ok := re.FindSubmatch([]byte(args[1]))
	if !ok {
		fmt.Println("no match")
		return
	}
	fmt.Println("match")
	for i, c := range caps {
		fmt.Printf("  group %d: {%d,%d}\n", i, c.Start, c.End)
	}
}

// runString joins args with a space, then reports on that buffer.
func runString(args []string) {
	if len(args) == 0 {
		log.Fatal("string: need at least one word argument")
	}
	s := bytestring.From([]byte(strings.Join(args, " ")))
	fmt.Printf("len=%s: %q\n", humanize.Comma(int64(s.Len())), s.Bytes())
}

func showUsage() {
	fmt.Println("gearbox - generic container and regex library demo CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gearbox array <ints...>              Push ints onto an Array and print it   (alias: a)")
	fmt.Println("  gearbox btree <key=value...>          Insert pairs into a Tree, print in-order (alias: t)")
	fmt.Println("  gearbox regex <pattern> <haystack>    Match a pattern against a haystack       (alias: r)")
	fmt.Println("  gearbox string <words...>              Build a String, report its length       (alias: s)")
	fmt.Println()
	fmt.Println("  gearbox help [command]                Show detailed help for a command")
	fmt.Println("  gearbox version                       Show version")
	fmt.Println()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("Run 'gearbox help <command>' for details on a specific command.")
	}
}

func showVersion() {
	fmt.Printf("gearbox %s\n", version)
}

func showCommandHelp(command string) {
	if alias, ok := commandAliases[command]; ok {
		command = alias
	}
	help := map[string]string{
		"array":  "gearbox array <ints...>\n\nPushes each argument (parsed as an int) onto an Array[int] and\nprints its length, capacity, and contents.",
		"btree":  "gearbox btree <key=value...>\n\nInserts each key=value pair into a Tree[string,string] and prints\nan in-order walk of the resulting map.",
		"regex":  "gearbox regex <pattern> <haystack>\n\nCompiles pattern and matches it against haystack in its entirety,\nprinting whether it matched and the {start,end} span of each capture group.",
		"string": "gearbox string <words...>\n\nJoins words with a space into a String and reports its length and contents.",
	}
	if text, ok := help[command]; ok {
		fmt.Println(text)
		return
	}
	fmt.Printf("No detailed help available for %q\n", command)
}
