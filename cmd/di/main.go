// Command di is the DI language's command-line front end: read one or
// more source files into a single persistent interpreter, in order, and
// print (or write) the value of the last top-level expression.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"ditchy/config"
	"ditchy/interp"
	"ditchy/trace"
	"ditchy/types"
)

// stringList collects repeated occurrences of a flag, since the
// standard flag package has no built-in repeatable-string value.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	var inputs stringList
	flag.Var(&inputs, "i", "source file to execute, in order (repeatable)")
	flag.Var(&inputs, "input", "alias for -i")

	output := flag.String("o", "", "write the final result to this path instead of stdout")
	flag.StringVar(output, "output", "", "alias for -o")

	noOutput := flag.Bool("no-output", false, "suppress printing the result entirely")
	configPath := flag.String("config", "di.yaml", "optional config file seeding flag defaults")

	traceEnabled := flag.Bool("trace", false, "enable evaluator call tracing")
	traceFilter := flag.String("trace-filter", "", "comma-separated glob patterns filtering traced calls")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", *configPath, err)
	}
	if len(inputs) == 0 {
		inputs = stringList(cfg.Inputs)
	}
	if *output == "" {
		*output = cfg.Output
	}
	if !*noOutput && cfg.NoOutput {
		*noOutput = true
	}

	if *traceEnabled || cfg.TraceOn {
		filters := cfg.TraceMatch
		if *traceFilter != "" {
			for _, f := range strings.Split(*traceFilter, ",") {
				filters = append(filters, strings.TrimSpace(f))
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	if len(inputs) == 0 {
		log.Fatalf("no input files given (use -i PATH)")
	}

	in := interp.New()
	var result types.Value
	for _, path := range inputs {
		source, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		v, err := in.Execute(string(source))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		result = v
	}

	// --no-output takes priority over -o when both are given.
	if *noOutput {
		return
	}

	out := formatResult(result)
	if *output != "" {
		if err := os.WriteFile(*output, []byte(out+"\n"), 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", *output, err)
		}
		return
	}
	fmt.Println(out)
}

// formatResult renders a DI value for CLI output. types.Value.String()
// is a debug/REPR form (a types.String quotes and escapes its content,
// per strconv.Quote), which is right for tracing but not for the
// program's actual printed result: original_source/dynamic_itchy.py
// prints the unwrapped value, i.e. a bare string's raw content with no
// quoting.
func formatResult(v types.Value) string {
	if s, ok := v.(types.String); ok {
		return s.Raw()
	}
	return v.String()
}
