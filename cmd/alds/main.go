package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/alds"
	"github.com/viant/alds/service/action/scheduler"
	"github.com/viant/alds/tracing"
	"gopkg.in/yaml.v3"
)

var (
	flagConfig string
	flagTrace  string
	flagJSON   bool
)

func main() {
	ctx := context.Background()
	err := newRootCmd().ExecuteContext(ctx)
	if tErr := tracing.Shutdown(ctx); tErr != nil {
		fmt.Fprintf(os.Stderr, "alds: %v\n", tErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "alds",
		Short: "Evaluate postfix expressions and simulate round-robin scheduling",
		Long: `alds runs two simulations on bounded containers: a postfix evaluator
backed by a bounded stack and a round-robin scheduler backed by a ready queue.
Input is read from arguments, a file URL or standard input.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config URL (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagTrace, "trace", "", "Write OpenTelemetry spans to file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(postfixCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(configCmd())
	return rootCmd
}

// newService builds the service from --config and --trace
func newService(ctx context.Context) (*alds.Service, error) {
	config := alds.DefaultConfig()
	if flagConfig != "" {
		var err error
		if config, err = alds.LoadConfig(ctx, flagConfig); err != nil {
			return nil, err
		}
	}
	if flagTrace != "" {
		config.Tracing.Enabled = true
		config.Tracing.Output = flagTrace
	}
	return alds.New(alds.WithConfig(config)), nil
}

func postfixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix [expression]",
		Short: "Evaluate a postfix expression, read from stdin when no argument is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			expression := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read expression: %w", err)
				}
				expression = string(data)
			}
			srv, err := newService(ctx)
			if err != nil {
				return err
			}
			result, err := srv.Runtime().Evaluate(ctx, expression)
			if err != nil {
				return err
			}
			if flagJSON {
				return outputJSON(cmd.OutOrStdout(), map[string]int64{"result": result})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func scheduleCmd() *cobra.Command {
	var flagFile, flagOutput string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run a round-robin workload and print \"name elapsed\" in completion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			srv, err := newService(ctx)
			if err != nil {
				return err
			}
			runtime := srv.Runtime()
			var workload *scheduler.Workload
			if flagFile != "" {
				workload, err = runtime.LoadWorkload(ctx, flagFile)
			} else {
				var data []byte
				if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read workload: %w", err)
				}
				workload, err = scheduler.ParseWorkload(string(data))
			}
			if err != nil {
				return err
			}
			completed, err := runtime.Schedule(ctx, workload)
			if err != nil {
				return err
			}
			buffer := &bytes.Buffer{}
			if flagJSON {
				err = outputJSON(buffer, completed)
			} else {
				err = scheduler.WriteCompletions(buffer, completed)
			}
			if err != nil {
				return err
			}
			if flagOutput != "" {
				return afs.New().Upload(ctx, flagOutput, file.DefaultFileOsMode, bytes.NewReader(buffer.Bytes()))
			}
			_, err = cmd.OutOrStdout().Write(buffer.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&flagFile, "file", "", "Workload URL: .yaml/.yml/.json or \"n quantum\" text")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Write completions to URL instead of stdout")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newService(cmd.Context())
			if err != nil {
				return err
			}
			if flagJSON {
				return outputJSON(cmd.OutOrStdout(), srv.Config())
			}
			data, err := yaml.Marshal(srv.Config())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func outputJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
