// irqtap tails the event trace a demo target prints over its serial
// console. Event lines have the form
//
//	EVT <name> <value...>
//
// and are echoed with a host timestamp; every -every events a per-name
// count summary is printed. Non-event lines pass through untouched.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"baremetal/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	every  = flag.Int("every", 100, "Print a count summary every N events (0 disables)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	counts, err := tail(port, os.Stdout, *every)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trace: %v\n", err)
		os.Exit(1)
	}
	printSummary(os.Stdout, counts)
}

// tail echoes newline-framed lines from r to w until EOF, timestamping each
// and counting event lines by name. A summary is printed every n events.
func tail(r io.Reader, w io.Writer, n int) (map[string]int, error) {
	counts := make(map[string]int)
	total := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", time.Now().Format("15:04:05.000"), line)

		name, ok := eventName(line)
		if !ok {
			continue
		}
		counts[name]++
		total++
		if n > 0 && total%n == 0 {
			printSummary(w, counts)
		}
	}
	return counts, sc.Err()
}

// eventName extracts the name from an "EVT <name> ..." line.
func eventName(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "EVT" {
		return "", false
	}
	return fields[1], true
}

func printSummary(w io.Writer, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "--- event counts ---")
	for _, name := range names {
		fmt.Fprintf(w, "  %-20s %d\n", name, counts[name])
	}
}
