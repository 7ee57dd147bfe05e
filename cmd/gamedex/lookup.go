package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gamedex/internal/config"
	"github.com/pdiddy/gamedex/internal/lookup"
	"github.com/pdiddy/gamedex/internal/render"
	"github.com/pdiddy/gamedex/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [title]",
	Short: "Look up one game by title",
	Long: `Lookup searches the RAWG API for a game title and prints a summary of the
best match. When the title argument is omitted it is read from standard
input. Zero results is a normal outcome and prints alternative spellings
instead of failing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("debug", false, "enable verbose diagnostics for this run")
	lookupCmd.Flags().Int("timeout", 0, "HTTP request timeout in seconds, 1-300 (overrides REQUEST_TIMEOUT)")
	lookupCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "json", "yaml":
	default:
		return types.NewError(types.FailInvalidConfig, "unknown output format %q (want text, json, or yaml)", format)
	}

	timeoutRaw := viper.GetString("request_timeout")
	if secs, _ := cmd.Flags().GetInt("timeout"); secs != 0 {
		timeoutRaw = strconv.Itoa(secs)
	}
	debugFlag, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Build(resolveAPIKey(), timeoutRaw, viper.GetString("developer_mode"), debugFlag)
	if err != nil {
		return err
	}
	cfg.UserAgent = "gamedex/" + version

	log := newLogger(cfg.Debug)
	if cfg.Debug {
		log.Debug().Msg("debug mode enabled for this run")
	}

	title := ""
	if len(args) == 1 {
		title = args[0]
	} else {
		title, err = promptTitle(cmd)
		if err != nil {
			return err
		}
	}

	q, err := lookup.NewQuery(title)
	if err != nil {
		return err
	}
	log.Debug().Str("title", q.Sanitized).Dur("timeout", cfg.Timeout).Msg("searching for game")

	client := lookup.NewClient(cfg, log)
	out, err := lookup.Run(cmd.Context(), client, q)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !out.Found() {
		// Zero results still exits 0; the report carries the suggestions.
		switch format {
		case "json":
			return render.WriteJSON(w, out.Suggestions)
		case "yaml":
			return render.WriteYAML(w, out.Suggestions)
		}
		render.WriteNotFound(w, q.Sanitized, out.Suggestions)
		return nil
	}

	switch format {
	case "json":
		return render.WriteJSON(w, *out.Game)
	case "yaml":
		return render.WriteYAML(w, *out.Game)
	}
	render.WriteReport(w, *out.Game)
	return nil
}

// promptTitle reads one title line interactively when no argument was given.
// EOF with usable input (a line without a trailing newline) is fine; any
// other read error is surfaced.
func promptTitle(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Enter the name of the game: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", types.WrapError(types.FailEmptyQuery, err, "reading game title")
	}
	title := strings.TrimSpace(line)
	if title == "" {
		return "", types.NewError(types.FailEmptyQuery, "no game title provided")
	}
	return title, nil
}

// newLogger builds the stderr diagnostic logger. Debug detail is opt-in;
// warnings always pass through.
func newLogger(debug bool) zerolog.Logger {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if debug {
		return log.Level(zerolog.DebugLevel)
	}
	return log.Level(zerolog.WarnLevel)
}
