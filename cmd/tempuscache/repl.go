package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"

	"github.com/tempuscache/tempuscache"
)

/*
repl implements a line-delimited command grammar:

	SET key value [ttl]  - store key-value with optional TTL in seconds
	GET key              - retrieve value by key
	DELETE key           - remove key
	EXISTS key           - check if key exists
	EXPIRE key seconds   - set expiration time
	FLUSH                - clear all data
	STATS                - show cache statistics
	HELP                 - show this help
	QUIT / EXIT          - exit the program

This front-end is a thin, independently replaceable collaborator — none
of its behavior is covered by the core package's invariants.
*/
type repl struct {
	cache     *tempuscache.Cache
	startedAt time.Time
	out       io.Writer
}

func newREPL(cache *tempuscache.Cache, out io.Writer) *repl {
	return &repl{cache: cache, startedAt: time.Now(), out: out}
}

func (r *repl) printWelcome() {
	fmt.Fprintln(r.out, "tempuscache — in-process key-value cache")
	fmt.Fprintln(r.out, "Type HELP for the command list, QUIT to exit.")
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, "SET key value [ttl]   Store a key-value pair with optional TTL in seconds")
	fmt.Fprintln(r.out, "GET key               Retrieve the value for a key")
	fmt.Fprintln(r.out, "DELETE key            Remove a key and its value")
	fmt.Fprintln(r.out, "EXISTS key            Check if a key exists and is not expired")
	fmt.Fprintln(r.out, "EXPIRE key seconds    Set expiration time for an existing key")
	fmt.Fprintln(r.out, "FLUSH                 Clear the entire cache")
	fmt.Fprintln(r.out, "STATS                 Display cache statistics")
	fmt.Fprintln(r.out, "HELP                  Show this help message")
	fmt.Fprintln(r.out, "QUIT                  Exit the program")
}

// run drives the REPL loop until QUIT/EXIT or EOF (Ctrl-D).
func (r *repl) run() error {
	rl, err := readline.New("tempuscache> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	r.printWelcome()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		if r.dispatch(tokens) {
			return nil
		}
	}
}

// dispatch executes one command line and reports whether the REPL should
// exit.
func (r *repl) dispatch(tokens []string) (exit bool) {
	verb := strings.ToUpper(tokens[0])

	switch verb {
	case "SET":
		r.handleSet(tokens)
	case "GET":
		r.handleGet(tokens)
	case "DELETE", "DEL":
		r.handleDelete(tokens)
	case "EXISTS":
		r.handleExists(tokens)
	case "EXPIRE":
		r.handleExpire(tokens)
	case "FLUSH":
		r.cache.Flush()
		fmt.Fprintln(r.out, "OK")
	case "STATS":
		r.printStats()
	case "HELP":
		r.printHelp()
	case "QUIT", "EXIT":
		return true
	default:
		fmt.Fprintf(r.out, "Error: unknown command %q\n", tokens[0])
	}
	return false
}

func (r *repl) handleSet(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(r.out, "Error: SET requires at least key and value")
		fmt.Fprintln(r.out, "Usage: SET key value [ttl]")
		return
	}

	key, value := tokens[1], tokens[2]
	ttl := 0
	if len(tokens) >= 4 {
		parsed, err := strconv.Atoi(tokens[3])
		if err != nil {
			fmt.Fprintln(r.out, "Error: invalid TTL value")
			return
		}
		if parsed <= 0 {
			fmt.Fprintln(r.out, "Error: TTL must be positive")
			return
		}
		ttl = parsed
	}

	r.cache.Set(key, value, ttl)
	if ttl > 0 {
		fmt.Fprintf(r.out, "OK (expires in %d seconds)\n", ttl)
	} else {
		fmt.Fprintln(r.out, "OK")
	}
}

func (r *repl) handleGet(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(r.out, "Error: GET requires a key")
		return
	}
	if value, ok := r.cache.Get(tokens[1]); ok {
		fmt.Fprintf(r.out, "%q\n", value)
	} else {
		fmt.Fprintln(r.out, "(nil)")
	}
}

func (r *repl) handleDelete(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(r.out, "Error: DELETE requires a key")
		return
	}
	fmt.Fprintln(r.out, intResponse(r.cache.Del(tokens[1])))
}

func (r *repl) handleExists(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(r.out, "Error: EXISTS requires a key")
		return
	}
	fmt.Fprintln(r.out, intResponse(r.cache.Exists(tokens[1])))
}

func (r *repl) handleExpire(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(r.out, "Error: EXPIRE requires a key and seconds")
		return
	}
	seconds, err := strconv.Atoi(tokens[2])
	if err != nil {
		fmt.Fprintln(r.out, "Error: invalid seconds value")
		return
	}
	fmt.Fprintln(r.out, intResponse(r.cache.Expire(tokens[1], seconds)))
}

func (r *repl) printStats() {
	keys := r.cache.KeyCount()
	bytes := r.cache.MemoryUsage()
	ops := r.cache.OpsPerSecond()

	fmt.Fprintln(r.out, "=== CACHE STATISTICS ===")
	fmt.Fprintf(r.out, "Keys:            %d\n", keys)
	fmt.Fprintf(r.out, "Memory usage:    %s\n", humanize.IBytes(uint64clamp(bytes)))
	fmt.Fprintf(r.out, "Operations/sec:  %.2f\n", ops)
	fmt.Fprintf(r.out, "Uptime:          %s\n", time.Since(r.startedAt).Round(time.Second))
	fmt.Fprintln(r.out, "========================")
}

func intResponse(ok bool) string {
	if ok {
		return "(integer) 1"
	}
	return "(integer) 0"
}

func uint64clamp(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
