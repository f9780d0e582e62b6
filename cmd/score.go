package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/logging"
	"github.com/abhisek/verdict/internal/scoring"
)

type reformJSON struct {
	Text      string `json:"text"`
	CaseTitle string `json:"caseTitle"`
	Priority  int    `json:"priority"`
}

type scoreJSON struct {
	Score   int          `json:"score"`
	Total   int          `json:"total"`
	Reforms []reformJSON `json:"reforms"`
	Share   string       `json:"share"`
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a set of verdicts and print the share summary",
		Example: "  verdict score --verdict 1=mixed --verdict 2=guilty --verdict 3=guilty --verdict 4=guilty\n" +
			"  verdict score --verdict 1=not_guilty --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			raw, _ := cmd.Flags().GetStringArray("verdict")
			verdicts, err := parseVerdicts(catalog, raw)
			if err != nil {
				return err
			}

			logger, err := logging.NewStderr("warn")
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if missing := catalog.Count() - len(verdicts); missing > 0 {
				logger.Warn("cases without a verdict count as incorrect", zap.Int("missing", missing))
			}

			result := scoring.Evaluate(catalog.All(), verdicts)

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(toScoreJSON(result))
			}
			_, err = fmt.Fprintln(out, result.Share)
			return err
		},
	}
	cmd.Flags().StringArray("verdict", nil, "Verdict as <case-id>=<guilty|not_guilty|mixed> (repeatable)")
	cmd.Flags().Bool("json", false, "Print score, reforms and share summary as JSON")
	return cmd
}

// parseVerdicts turns id=verdict pairs into a verdict map. A later pair
// for the same case overwrites an earlier one.
func parseVerdicts(catalog *casebook.Catalog, pairs []string) (map[int]casebook.VerdictType, error) {
	verdicts := make(map[int]casebook.VerdictType, len(pairs))
	for _, pair := range pairs {
		idStr, vStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --verdict %q: want <case-id>=<verdict>", pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid --verdict %q: case id: %w", pair, err)
		}
		if _, ok := catalog.ByID(id); !ok {
			return nil, fmt.Errorf("invalid --verdict %q: no case with id %d", pair, id)
		}
		v, err := casebook.ParseVerdict(strings.TrimSpace(vStr))
		if err != nil {
			return nil, fmt.Errorf("invalid --verdict %q: %w", pair, err)
		}
		verdicts[id] = v
	}
	return verdicts, nil
}

func toScoreJSON(r scoring.Result) scoreJSON {
	out := scoreJSON{
		Score:   r.Score,
		Total:   r.Total,
		Reforms: make([]reformJSON, len(r.Reforms)),
		Share:   r.Share,
	}
	for i, ref := range r.Reforms {
		out.Reforms[i] = reformJSON{Text: ref.Text, CaseTitle: ref.CaseTitle, Priority: ref.Priority}
	}
	return out
}
