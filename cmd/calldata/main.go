package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/0xRampey/hyperlane-monorepo/abi"
	"github.com/0xRampey/hyperlane-monorepo/dispatch"
	"github.com/0xRampey/hyperlane-monorepo/mailbox"
)

func main() {
	var (
		abiFile     = flag.String("abi", "", "Path to a JSON ABI file (default: embedded Mailbox ABI)")
		decodeHex   = flag.String("decode", "", "Hex calldata to identify and decode")
		topicsStr   = flag.String("topics", "", "Log topics as comma-separated hex words")
		logDataHex  = flag.String("data", "", "Log data section as hex (used with -topics)")
		funcName    = flag.String("func", "", "Function to encode calldata for")
		argsStr     = flag.String("args", "", "Function arguments (comma-separated)")
		list        = flag.Bool("list", false, "List functions and events and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log rejected dispatch candidates")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dispatch.SetLogger(logger)
	}

	table, iface, err := loadTable(*abiFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(iface); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(table, iface, *decodeHex, *topicsStr, *logDataHex, *funcName, *argsStr, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadTable(abiFile string) (*dispatch.Table, *abi.Interface, error) {
	if abiFile == "" {
		return mailbox.Table(), mailbox.Interface(), nil
	}
	doc, err := os.ReadFile(abiFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read abi: %w", err)
	}
	iface, err := abi.ParseInterface(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("parse abi: %w", err)
	}
	table := dispatch.NewTable()
	table.RegisterInterface(iface)
	return table, iface, nil
}

func run(table *dispatch.Table, iface *abi.Interface, decodeHex, topicsStr, logDataHex, funcName, argsStr string, listOnly bool) error {
	if listOnly {
		fmt.Println("Functions:")
		for _, s := range iface.Functions {
			fmt.Printf("  %s  %s\n", s.Selector().Hex(), s.Signature())
		}
		fmt.Println("\nEvents:")
		for _, e := range iface.Events {
			fmt.Printf("  %s  %s\n", e.TopicID().Hex(), e.Signature())
		}
		return nil
	}

	if decodeHex != "" {
		data, err := parseHex(decodeHex)
		if err != nil {
			return fmt.Errorf("parse calldata: %w", err)
		}
		call, err := table.DecodeCall(data)
		if err != nil {
			return err
		}
		fmt.Printf("Function: %s\n", call.Schema.Signature())
		for i, p := range call.Schema.Inputs {
			fmt.Printf("  %s = %s\n", p.Name, call.Args[i])
		}
		return nil
	}

	if topicsStr != "" {
		topics, err := parseTopics(topicsStr)
		if err != nil {
			return fmt.Errorf("parse topics: %w", err)
		}
		var data []byte
		if logDataHex != "" {
			data, err = parseHex(logDataHex)
			if err != nil {
				return fmt.Errorf("parse log data: %w", err)
			}
		}
		event, err := table.DecodeLog(topics, data)
		if err != nil {
			return err
		}
		fmt.Printf("Event: %s\n", event.Schema.Signature())
		for i, f := range event.Schema.Fields {
			fmt.Printf("  %s = %s\n", f.Name, event.Fields[i])
		}
		return nil
	}

	if funcName != "" {
		schemas := schemasByName(iface, funcName)
		if len(schemas) == 0 {
			return fmt.Errorf("no function named %s", funcName)
		}
		var rawArgs []string
		if argsStr != "" {
			rawArgs = strings.Split(argsStr, ",")
		}
		data, err := encodeWithOverloads(schemas, rawArgs)
		if err != nil {
			return err
		}
		fmt.Printf("0x%s\n", hex.EncodeToString(data))
		return nil
	}

	flag.Usage()
	return nil
}

func schemasByName(iface *abi.Interface, name string) []*abi.Schema {
	var out []*abi.Schema
	for _, s := range iface.Functions {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// encodeWithOverloads tries each overload with a matching argument count in
// declaration order.
func encodeWithOverloads(schemas []*abi.Schema, rawArgs []string) ([]byte, error) {
	var lastErr error
	for _, s := range schemas {
		if len(s.Inputs) != len(rawArgs) {
			continue
		}
		args := make([]abi.Value, len(rawArgs))
		ok := true
		for i, raw := range rawArgs {
			v, err := parseArg(strings.TrimSpace(raw), s.Inputs[i].Type)
			if err != nil {
				lastErr = fmt.Errorf("%s argument %d: %w", s.Signature(), i, err)
				ok = false
				break
			}
			args[i] = v
		}
		if !ok {
			continue
		}
		data, err := s.Encode(args)
		if err != nil {
			lastErr = err
			continue
		}
		return data, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("no overload takes %d arguments", len(rawArgs))
}

// parseArg converts one command-line token into a value of the wanted
// elementary type. Composite types have no flat text form here; use the
// library for those.
func parseArg(raw string, t abi.Type) (abi.Value, error) {
	switch t.Kind {
	case abi.KindBool:
		switch raw {
		case "true", "1":
			return abi.BoolValue(true), nil
		case "false", "0":
			return abi.BoolValue(false), nil
		}
		return abi.Value{}, fmt.Errorf("bad bool %q", raw)
	case abi.KindUint, abi.KindInt:
		n, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return abi.Value{}, fmt.Errorf("bad integer %q", raw)
		}
		if t.Kind == abi.KindUint {
			return abi.UintValue(n), nil
		}
		return abi.IntValue(n), nil
	case abi.KindAddress:
		b, err := parseHex(raw)
		if err != nil || len(b) != 20 {
			return abi.Value{}, fmt.Errorf("bad address %q", raw)
		}
		var a abi.Address
		copy(a[:], b)
		return abi.AddressValue(a), nil
	case abi.KindFixedBytes:
		b, err := parseHex(raw)
		if err != nil || len(b) != t.Size {
			return abi.Value{}, fmt.Errorf("bad %s %q", t, raw)
		}
		return abi.FixedBytesValue(b), nil
	case abi.KindBytes:
		b, err := parseHex(raw)
		if err != nil {
			return abi.Value{}, fmt.Errorf("bad bytes %q", raw)
		}
		return abi.BytesValue(b), nil
	case abi.KindString:
		return abi.StringValue(raw), nil
	default:
		return abi.Value{}, fmt.Errorf("cannot parse %s from a flag, use the library", t)
	}
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

func parseTopics(s string) ([]abi.Word, error) {
	parts := strings.Split(s, ",")
	topics := make([]abi.Word, len(parts))
	for i, p := range parts {
		b, err := parseHex(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if len(b) != abi.WordSize {
			return nil, fmt.Errorf("topic %d is %d bytes, want %d", i, len(b), abi.WordSize)
		}
		copy(topics[i][:], b)
	}
	return topics, nil
}
