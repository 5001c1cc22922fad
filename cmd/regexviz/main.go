package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"regexviz/internal/script"
	"regexviz/internal/server"
	"regexviz/regexlib"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "regexviz",
		Short: "compile regex patterns to Thompson NFAs, simulate and export them",
	}
	rootCmd.AddCommand(
		compileCmd(),
		matchCmd(),
		replCmd(),
		scriptCmd(),
		serveCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func compileCmd() *cobra.Command {
	var (
		outFile string
		pngFlag bool
		input   string
	)
	cmd := &cobra.Command{
		Use:   "compile <pattern>",
		Short: "export the compiled NFA as Graphviz DOT (or PNG via dot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := regexlib.Compile(args[0])
			if err != nil {
				return fmt.Errorf("compile %q: %w", args[0], err)
			}

			var buf bytes.Buffer
			if cmd.Flags().Changed("input") {
				regexlib.ExportDOTActive(&buf, nfa, nfa.Simulate(input).ActiveStates)
			} else {
				regexlib.ExportDOT(&buf, nfa)
			}

			if pngFlag {
				dot := exec.Command("dot", "-Tpng", "-o", outFile)
				dot.Stdin = bytes.NewReader(buf.Bytes())
				dot.Stderr = os.Stderr
				if err := dot.Run(); err != nil {
					return fmt.Errorf("dot failed: %w", err)
				}
				fmt.Printf("PNG written to %s\n", outFile)
				return nil
			}

			var w io.Writer
			if outFile == "-" {
				w = os.Stdout
			} else {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("cannot create %s: %w", outFile, err)
				}
				defer f.Close()
				w = f
			}
			if _, err := io.Copy(w, &buf); err != nil {
				return err
			}
			if outFile != "-" {
				fmt.Printf("DOT written to %s\n", outFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "graph.dot", "output file (- for stdout)")
	cmd.Flags().BoolVar(&pngFlag, "png", false, "render PNG via dot -Tpng")
	cmd.Flags().StringVar(&input, "input", "", "highlight states active after this input")
	return cmd
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "simulate an input string against a pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, err := regexlib.Compile(args[0])
			if err != nil {
				return fmt.Errorf("compile %q: %w", args[0], err)
			}
			res := nfa.Simulate(args[1])
			fmt.Printf("active states: %v\n", res.ActiveStates)
			if res.Match {
				fmt.Println("match")
			} else {
				fmt.Println("no match")
			}
			return nil
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive pattern/text loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			rdr := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("pattern> ")
				pat, err := rdr.ReadString('\n')
				if err != nil {
					return nil
				}
				pat = strings.TrimRight(pat, "\n")
				if pat == "" {
					return nil
				}
				nfa, err := regexlib.Compile(pat)
				if err != nil {
					fmt.Println("error:", err)
					continue
				}
				fmt.Print("text> ")
				txt, err := rdr.ReadString('\n')
				if err != nil {
					return nil
				}
				res := nfa.Simulate(strings.TrimRight(txt, "\n"))
				fmt.Printf("active=%v match=%v\n", res.ActiveStates, res.Match)
			}
		},
	}
}

func scriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script <file>",
		Short: "run an automaton check script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := script.RunFile(args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the compile/simulate HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			return server.New(log).Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8844", "listen address")
	return cmd
}
