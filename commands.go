package main

import (
	"fmt"
	"io"
	"multiagent/engine"
	"multiagent/experiments"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/game/tree"
	"multiagent/searcher"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "treesearch",
		Short:        "Adversarial search over game trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "zerolog level (debug, info, warn, error)")

	root.AddCommand(newDecideCmd(), newPlayCmd(), newCompareCmd(), newGenerateCmd())
	return root
}

// searchFlags are shared by the commands that run searchers.
type searchFlags struct {
	treePath   string
	depth      string
	evaluation string
	seed       uint64
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.treePath, "tree", "", "YAML game tree to search (required)")
	cmd.Flags().StringVar(&f.depth, "depth", fmt.Sprint(searcher.DefaultDepth), "plies to search below the root")
	cmd.Flags().StringVar(&f.evaluation, "eval", searcher.DefaultEvaluation,
		fmt.Sprintf("cutoff evaluation, one of %s", strings.Join(game.EvaluationNames(), ", ")))
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "tie-break seed (default: clock)")
	_ = cmd.MarkFlagRequired("tree")
}

// resolveSeed keeps runs reproducible only when asked to
func (f *searchFlags) resolveSeed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}
	return uint64(time.Now().UnixNano())
}

// newAgent builds a searcher for tree positions. Tree states are not grids,
// so reflex agents judge successors by score.
func (f *searchFlags) newAgent(kind string, seed uint64) (searcher.Agent, error) {
	depth, err := searcher.ParseDepth(f.depth)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithDepth(depth),
		searcher.WithEvaluationFn(f.evaluation),
		searcher.WithSeed(seed),
		searcher.WithMetrics(),
	}
	if kind == "reflex" {
		options = append(options, searcher.WithReflexEvaluation(searcher.EvaluateSuccessorScore))
	}
	return searcher.New(kind, options...)
}

func newDecideCmd() *cobra.Command {
	var flags searchFlags
	var kind string

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Pick the controlled agent's action at the root of a tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := tree.LoadFile(flags.treePath)
			if err != nil {
				return err
			}
			agent, err := flags.newAgent(kind, flags.resolveSeed(cmd))
			if err != nil {
				return err
			}

			decision, err := agent.FindMove(t.Start())
			if err != nil {
				return err
			}
			config := agent.Config()
			fmt.Fprintf(cmd.OutOrStdout(), "action=%s value=%g nodes=%d cutoffs=%d prunes=%d depth=%d eval=%s\n",
				decision.Action, decision.Value, decision.Metrics.Nodes, decision.Metrics.Cutoffs, decision.Metrics.Prunes,
				config.Depth(), config.EvaluationName())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "agent", "alphabeta", fmt.Sprintf("searcher, one of %s", strings.Join(searcher.AgentNames(), ", ")))
	return cmd
}

func newPlayCmd() *cobra.Command {
	var flags searchFlags
	var kind, adversary string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a tree out against a scripted adversary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := tree.LoadFile(flags.treePath)
			if err != nil {
				return err
			}
			seed := flags.resolveSeed(cmd)
			agent, err := flags.newAgent(kind, seed)
			if err != nil {
				return err
			}

			var policy engine.Policy
			switch adversary {
			case "greedy":
				policy = engine.GreedyPolicy{}
			case "random":
				// Offset so adversary draws do not mirror the agent's tie-breaks
				policy = engine.NewRandomPolicy(rand.New(rand.NewSource(seed + 1)))
			default:
				return fmt.Errorf("unknown adversary %q, want greedy or random", adversary)
			}

			result, err := engine.LocalEngine(agent, policy).Run(t.Start())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, move := range result.Moves {
				fmt.Fprintf(w, "turn=%d agent=%d action=%s nodes=%d\n", move.Turn, move.Agent, move.Action, move.Nodes)
			}
			fmt.Fprintf(w, "score=%g win=%t lose=%t\n", result.Final.Score(), result.Final.IsWin(), result.Final.IsLose())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "agent", "alphabeta", fmt.Sprintf("searcher, one of %s", strings.Join(searcher.AgentNames(), ", ")))
	cmd.Flags().StringVar(&adversary, "adversary", "greedy", "adversary policy, greedy or random")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var flags searchFlags
	var out string
	var sweep bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every adversarial searcher on a tree and report node counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			depth, err := searcher.ParseDepth(flags.depth)
			if err != nil {
				return err
			}
			t, err := tree.LoadFile(flags.treePath)
			if err != nil {
				return err
			}

			configs := experiments.MatchedConfigs(experiments.AdversarialKinds, depth, flags.evaluation)
			if sweep {
				configs = experiments.DepthSweep(experiments.AdversarialKinds, depth, flags.evaluation)
			}
			positions := []game.State{t.Start()}
			seed := flags.resolveSeed(cmd)

			if out != "" {
				dir, err := experiments.Run("compare", out, positions, configs, seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dir)
				return nil
			}

			records, err := experiments.Compare(positions, configs, seed)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), configs, records)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "directory to write CSV results to instead of printing")
	cmd.Flags().BoolVar(&sweep, "sweep", false, "search every depth from 1 to --depth")
	return cmd
}

func printRecords(w io.Writer, configs []metrics.AgentConfig, records []metrics.Record) error {
	byID := make(map[int]metrics.AgentConfig, len(configs))
	for _, config := range configs {
		byID[config.ID] = config
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AGENT\tDEPTH\tACTION\tVALUE\tNODES\tCUTOFFS\tPRUNES")
	for _, record := range records {
		config := byID[record.Agent]
		fmt.Fprintf(tw, "%s\t%d\t%s\t%g\t%d\t%d\t%d\n",
			config.Kind, config.Depth, record.Action, record.Value, record.Nodes, record.Cutoffs, record.Prunes)
	}
	return tw.Flush()
}

func newGenerateCmd() *cobra.Command {
	var agents, plies, branching int
	var seed uint64
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random complete game tree as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			t, err := tree.Generate(rand.New(rand.NewSource(seed)), agents, plies, branching)
			if err != nil {
				return err
			}
			log.Info().Msgf("generated tree with %d nodes", t.Size())

			if out == "" {
				return t.Write(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := t.Write(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().IntVar(&agents, "agents", 2, "number of agents, the controlled one included")
	cmd.Flags().IntVar(&plies, "plies", 2, "full rounds in the tree")
	cmd.Flags().IntVar(&branching, "branching", 2, "actions per node")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "generator seed (default: clock)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write instead of stdout")
	return cmd
}
