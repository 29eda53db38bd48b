package conlog

import (
	"bufio"
	"io"
	"os"
	"strings"

	"conlog/option"
	"conlog/pkg/color"
	"conlog/pkg/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var mainCommand = &cobra.Command{
	Use:   "conlog [flags] <level> [message ...]",
	Short: "Write leveled, colored log lines to the console",
	Long: `Write a message at the given level. Without a message every line
read from standard input is written at that level.

Levels: debug, log, info, warn, severe, fatal.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run(cmd.Flags(), args))
	},
}

func Execute() {
	if code := execute(); code != 0 {
		os.Exit(code)
	}
}

func execute() int {
	if err := mainCommand.Execute(); err != nil {
		return 1
	}
	return 0
}

var (
	paramConfig       string
	paramName         string
	paramDisable      []string
	paramColor        color.Mode
	paramLegacyRoutes bool
	paramDisableTime  bool
)

// console streams, replaced in tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer
	stderr io.Writer
)

func init() {
	addFlags(mainCommand.Flags())
}

func addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&paramConfig, "config", "c", "", "config file")
	flagSet.StringVarP(&paramName, "name", "n", "", "logger name")
	flagSet.StringSliceVar(&paramDisable, "disable", nil, "comma separated list of levels to disable")
	paramColor = color.ModeAuto
	flagSet.Var(&paramColor, "color", "when to use colors: auto, always or never")
	flagSet.BoolVar(&paramLegacyRoutes, "legacy-routes", false, "write info and warn to the stream of log")
	flagSet.BoolVar(&paramDisableTime, "disable-time", false, "don't prefix lines with a timestamp")
}

func run(flagSet *pflag.FlagSet, args []string) int {
	bootLogger := log.NewLogger(log.Options{Output: stderr, ErrOutput: stderr})

	opt, err := loadOption(flagSet)
	if err != nil {
		bootLogger.Fatal(err)
		return 1
	}
	level, err := log.ParseLevel(args[0])
	if err != nil {
		bootLogger.Fatal(err)
		return 1
	}

	opts := opt.LogOption.Options()
	opts.Output, opts.ErrOutput = stdout, stderr
	w := log.NewSimpleWriter(log.NewLogger(opts), level)

	if len(args) > 1 {
		_, _ = w.Write([]byte(strings.Join(args[1:], " ")))
		return 0
	}
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		_, _ = w.Write(scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		bootLogger.Fatal(errors.Wrap(err, "read stdin"))
		return 1
	}
	return 0
}

// loadOption reads the config file, if any, and applies the flags set on
// the command line over it.
func loadOption(flagSet *pflag.FlagSet) (*option.Option, error) {
	opt := &option.Option{}
	if paramConfig != "" {
		var err error
		opt, err = option.ReadOption(paramConfig)
		if err != nil {
			return nil, err
		}
	} else if err := option.CheckOption(opt); err != nil {
		return nil, err
	}

	logOption := &opt.LogOption
	if flagSet.Changed("name") {
		logOption.Name = paramName
	}
	for _, s := range paramDisable {
		level, err := log.ParseLevel(s)
		if err != nil {
			return nil, errors.Wrap(err, "--disable")
		}
		if logOption.Levels == nil {
			logOption.Levels = make(map[option.Level]bool)
		}
		logOption.Levels[option.Level(level)] = false
	}
	if flagSet.Changed("color") {
		logOption.Color = option.ColorMode(paramColor)
	}
	if flagSet.Changed("legacy-routes") {
		logOption.LegacyRoutes = paramLegacyRoutes
	}
	if flagSet.Changed("disable-time") {
		logOption.DisableTime = paramDisableTime
	}
	return opt, nil
}
