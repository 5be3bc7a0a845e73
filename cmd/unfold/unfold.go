package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/charmingruby/unfold/internal/catalog"
	"github.com/charmingruby/unfold/internal/log"
	"github.com/charmingruby/unfold/seq"
)

var Version string

const (
	configF    = "config"
	sequenceF  = "sequence"
	countF     = "count"
	skipF      = "skip"
	seedF      = "seed"
	stepF      = "step"
	formatF    = "format"
	verbosityF = "verbosity"
	listF      = "list"

	defaultConfig    = ""
	defaultSequence  = "fibonacci"
	defaultCount     = 10
	defaultSkip      = 0
	defaultSeed      = ""
	defaultStep      = ""
	defaultFormat    = "plain"
	defaultVerbosity = "warn"
	defaultList      = false

	configFlagUsage = "The yaml configuration file."
	sequenceUsage   = "Name of the sequence to unfold. See --list."
	countUsage      = "Number of values to print (at most 1000000)."
	skipUsage       = "Number of leading values to discard before printing (at most 1000000)."
	seedUsage       = "Seed of the sequence. A number for built-in sequences, " +
		"an expression for expr. Empty selects the sequence default."
	stepUsage   = "Step expression for expr. The state is bound to s; it must yield [next_state, value]."
	formatUsage = `Output format. Options:
plain, table, json, yaml`
	verbosityUsage = `Verbosity of the logs. Options:
debug, info, warn, error`
	listUsage = "List the available sequences and exit."

	envPrefix = "UNFOLD"
)

// Config is the resolved command configuration.
type Config struct {
	Sequence  string `mapstructure:"sequence" validate:"required,sequence"`
	Count     int    `mapstructure:"count" validate:"gte=0,lte=1000000"`
	Skip      int    `mapstructure:"skip" validate:"gte=0,lte=1000000"`
	Seed      string `mapstructure:"seed"`
	Step      string `mapstructure:"step" validate:"required_if=Sequence expr"`
	Format    string `mapstructure:"format" validate:"oneof=plain table json yaml"`
	Verbosity string `mapstructure:"verbosity" validate:"oneof=debug info warn error"`
	List      bool   `mapstructure:"list"`
}

// Row is one printed value and its 0-based pull index.
type Row struct {
	Index int `json:"index" yaml:"index"`
	Value any `json:"value" yaml:"value"`
}

func NewCmd() *cobra.Command {
	var cfgFile string

	unfoldCmd := &cobra.Command{
		Use:     "unfold [flags]",
		Short:   "Print a bounded prefix of an infinite unfolded sequence.",
		Version: Version,
		Args:    cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	unfoldCmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	unfoldCmd.Flags().String(sequenceF, defaultSequence, sequenceUsage)
	unfoldCmd.Flags().Int(countF, defaultCount, countUsage)
	unfoldCmd.Flags().Int(skipF, defaultSkip, skipUsage)
	unfoldCmd.Flags().String(seedF, defaultSeed, seedUsage)
	unfoldCmd.Flags().String(stepF, defaultStep, stepUsage)
	unfoldCmd.Flags().String(formatF, defaultFormat, formatUsage)
	unfoldCmd.Flags().String(verbosityF, defaultVerbosity, verbosityUsage)
	unfoldCmd.Flags().Bool(listF, defaultList, listUsage)

	unfoldCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(Config)
		if err := v.Unmarshal(cfg); err != nil {
			return err
		}

		if cfg.List {
			return renderCatalog(cmd.OutOrStdout())
		}
		if err := validate(cfg); err != nil {
			return err
		}

		logger, err := log.NewLogger(cfg.Verbosity)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		rows, err := run(cfg, func(pull int, value any) {
			logger.Debugw("Pulled value", "sequence", cfg.Sequence, "pull", pull, "value", value)
		})
		if err != nil {
			logger.Errorw("Sequence failed", "sequence", cfg.Sequence, "err", err)
			return err
		}
		logger.Infow("Sequence unfolded", "sequence", cfg.Sequence, "printed", len(rows))

		return render(cmd.OutOrStdout(), cfg.Format, rows)
	}

	return unfoldCmd
}

func validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("sequence", func(fl validator.FieldLevel) bool {
		_, ok := catalog.Lookup(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}

	err := v.Struct(cfg)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// run pulls skip+count values and returns the printed rows. A failing
// transition stops the run with an error naming the pull.
func run(cfg *Config, observe func(pull int, value any)) ([]Row, error) {
	src, err := catalog.Build(cfg.Sequence, cfg.Seed, cfg.Step)
	if err != nil {
		return nil, err
	}

	var failure error
	pull := 0
	pulled := seq.FromFunc(func() (Row, bool) {
		value, err := src.TryNext().Unwrap()
		if err != nil {
			failure = err
			return Row{}, false
		}
		row := Row{Index: pull, Value: value}
		pull++
		return row, true
	})
	traced := seq.Tap(pulled, func(r Row) { observe(r.Index, r.Value) })
	rows := seq.ToSlice(seq.Take(seq.Drop(traced, cfg.Skip), cfg.Count))
	if failure != nil {
		return nil, fmt.Errorf("sequence %q: %w", cfg.Sequence, failure)
	}
	return rows, nil
}
