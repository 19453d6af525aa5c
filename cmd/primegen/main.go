// Command primegen is the I/O front end of the prime generator: it runs
// the search loop and one-shot primality checks, prints witness tables,
// and persists accepted primes as hex text files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/liuyuxuan666390/miller-rabin-prime-tester/pkg/primegen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	root := &cobra.Command{
		Use:           "primegen",
		Short:         "Generate random probable primes and test candidates with Miller-Rabin",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newGenCmd(&configPath, &logLevel))
	root.AddCommand(newCheckCmd(&logLevel))
	root.AddCommand(newInitConfigCmd())
	return root
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	switch level {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

func newGenCmd(configPath, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Search for a random probable prime and save it as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(*logLevel)
			cfg, out, err := loadGenConfig(cmd, *configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			gen := primegen.New(logger)
			res, err := gen.Generate(ctx, cfg)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound probable %d-bit prime after %d attempts in %.1f seconds:\n",
				res.Prime.BitLen(), res.Attempts, res.Elapsed.Seconds())
			fmt.Printf("  p = %s\n", res.Prime)

			if err := os.WriteFile(out, []byte(res.Prime.String()+"\n"), 0o644); err != nil {
				return fmt.Errorf("save prime: %w", err)
			}
			logger.WithField("file", out).Info("saved prime in hex")
			return nil
		},
	}

	defaults := primegen.DefaultConfig(1024)
	cmd.Flags().Int("bits", defaults.Bits, "bit length of the prime")
	cmd.Flags().Int("rounds", defaults.Rounds, "Miller-Rabin rounds per candidate")
	cmd.Flags().Uint64("max-attempts", 0, "attempt budget, 0 = unlimited")
	cmd.Flags().Duration("max-duration", 0, "wall-clock budget, 0 = unlimited")
	cmd.Flags().Duration("reseed-interval", defaults.ReseedInterval, "reseed the generator on this timer, 0 disables")
	cmd.Flags().Uint64("seed", 0, "PRNG seed, 0 = derive from time")
	cmd.Flags().Int("workers", defaults.Workers, "parallel search workers")
	cmd.Flags().Uint64("progress-every", defaults.ProgressEvery, "attempts between progress reports")
	cmd.Flags().Bool("verbose", false, "log search progress")
	cmd.Flags().String("out", "prime.txt", "output file for the hex-encoded prime")
	return cmd
}

// loadGenConfig merges the optional yaml config file with the command's
// flags; flags win.
func loadGenConfig(cmd *cobra.Command, configPath string) (primegen.Config, string, error) {
	v := viper.New()
	defaults := primegen.DefaultConfig(1024)
	v.SetDefault("bits", defaults.Bits)
	v.SetDefault("rounds", defaults.Rounds)
	v.SetDefault("reseed_interval", defaults.ReseedInterval)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("progress_every", defaults.ProgressEvery)
	v.SetDefault("out", "prime.txt")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return primegen.Config{}, "", fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	for flag, key := range map[string]string{
		"bits":            "bits",
		"rounds":          "rounds",
		"max-attempts":    "max_attempts",
		"max-duration":    "max_duration",
		"reseed-interval": "reseed_interval",
		"seed":            "seed",
		"workers":         "workers",
		"progress-every":  "progress_every",
		"verbose":         "verbose",
		"out":             "out",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return primegen.Config{}, "", err
		}
	}

	var cfg primegen.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return primegen.Config{}, "", fmt.Errorf("parse config: %w", err)
	}
	return cfg, v.GetString("out"), nil
}

func newCheckCmd(logLevel *string) *cobra.Command {
	var (
		rounds int
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "check <hex>",
		Short: "Test a hex-encoded number for primality, printing each witness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(*logLevel)
			gen := primegen.New(logger)
			res, err := gen.Check(args[0], rounds, seed)
			if err != nil {
				return err
			}
			fmt.Printf("Testing input n = %s\n", res.Value)
			if res.Sieved {
				if res.ProbablePrime {
					fmt.Println("Decided by small-prime sieve -> prime")
				} else {
					fmt.Println("Decided by small-prime sieve -> composite")
				}
				return nil
			}
			for i, w := range res.Witnesses {
				verdict := "probably prime"
				if !w.Pass {
					verdict = "composite"
				}
				fmt.Printf("  base %2d: %s -> %s\n", i+1, w.Base, verdict)
			}
			if res.ProbablePrime {
				fmt.Println("Overall result: probably prime")
			} else {
				fmt.Println("Overall result: composite")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 10, "Miller-Rabin rounds")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "PRNG seed for witness draws, 0 = derive from time")
	return cmd
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Print a default yaml config for the gen command",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(primegen.DefaultConfig(1024))
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
}
