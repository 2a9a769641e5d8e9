// altercycle-repl is an interactive demo of the altercycle library.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mobiusdev/altercycle"
)

// REPL holds the state of the interactive session.
type REPL struct {
	cycle  *altercycle.Cycle[string]
	reader *bufio.Reader
}

func main() {
	fmt.Println("AlterCycle REPL - Alternating Ring Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		cycle:  altercycle.New[string](),
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("altercycle> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "help":
		r.printHelp()

	case "append":
		if len(args) < 1 {
			fmt.Println("Usage: append <value>")
			break
		}
		r.cycle.Append(args[0])
		fmt.Printf("Appended %q (size %d)\n", args[0], r.cycle.Size())

	case "insert":
		if len(args) < 2 {
			fmt.Println("Usage: insert <target> <value>")
			break
		}
		if r.cycle.InsertAfter(args[0], args[1]) {
			fmt.Printf("Inserted %q after %q\n", args[1], args[0])
		} else {
			fmt.Printf("Target %q not found\n", args[0])
		}

	case "remove":
		if len(args) < 1 {
			fmt.Println("Usage: remove <value>")
			break
		}
		if r.cycle.Remove(args[0]) {
			fmt.Printf("Removed %q (size %d)\n", args[0], r.cycle.Size())
		} else {
			fmt.Printf("Value %q not found\n", args[0])
		}

	case "flip":
		positions := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid lap count: %v\n", err)
				break
			}
			positions = n
		}
		r.cycle.FlipStates(positions)
		fmt.Printf("Flipped states over %d lap(s)\n", positions)

	case "patterns":
		if len(args) < 1 {
			fmt.Println("Usage: patterns <length>")
			break
		}
		length, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid length: %v\n", err)
			break
		}
		patterns := r.cycle.FindPatterns(length)
		if len(patterns) == 0 {
			fmt.Println("No recurring patterns")
			break
		}
		for _, p := range patterns {
			var elems []string
			for _, pair := range p.Window {
				elems = append(elems, fmt.Sprintf("%s(%d)", pair.Value, pair.Orientation))
			}
			fmt.Printf("  %s  x%d\n", strings.Join(elems, " -> "), p.Count)
		}

	case "parallel":
		workers := 4
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid worker count: %v\n", err)
				break
			}
			workers = n
		}
		var mu sync.Mutex
		counts := [2]int{}
		r.cycle.ProcessParallel(func(_ string, orientation int) {
			mu.Lock()
			counts[orientation]++
			mu.Unlock()
		}, workers)
		fmt.Printf("Visited %d nodes with %d workers (orientation 0: %d, 1: %d)\n",
			counts[0]+counts[1], workers, counts[0], counts[1])

	case "transform":
		if len(args) < 1 || (args[0] != "upper" && args[0] != "lower") {
			fmt.Println("Usage: transform upper|lower")
			break
		}
		fn := strings.ToUpper
		if args[0] == "lower" {
			fn = strings.ToLower
		}
		r.cycle.ApplyTransformation(func(v string, _ int) string { return fn(v) })
		fmt.Println("Transformation applied")

	case "checkpoint":
		cp := r.cycle.CreateCheckpoint()
		data, err := json.MarshalIndent(cp, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding checkpoint: %v\n", err)
			break
		}
		if len(args) > 0 {
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				fmt.Printf("Error writing checkpoint: %v\n", err)
				break
			}
			fmt.Printf("Checkpoint written to %s\n", args[0])
		} else {
			fmt.Println(string(data))
		}

	case "show":
		fmt.Println(r.cycle.String())

	case "size":
		fmt.Println(r.cycle.Size())

	default:
		fmt.Printf("Unknown command %q, type 'help'\n", cmd)
	}
	return true
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  append <value>          Append a value at the seam")
	fmt.Println("  insert <target> <value> Insert after the first match of target")
	fmt.Println("  remove <value>          Remove the first match")
	fmt.Println("  flip [laps]             Flip all orientations, once per lap")
	fmt.Println("  patterns <length>       Show recurring (value, orientation) windows")
	fmt.Println("  parallel [workers]      Traverse in parallel segments")
	fmt.Println("  transform upper|lower   Rewrite every value in place")
	fmt.Println("  checkpoint [file]       Dump a JSON checkpoint (to file if given)")
	fmt.Println("  show                    Print the ring")
	fmt.Println("  size                    Print the node count")
	fmt.Println("  quit                    Exit")
}
