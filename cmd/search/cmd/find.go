package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/scottcagno/stringsearch/pkg/search"
	"github.com/scottcagno/stringsearch/pkg/util"
)

func newFindCmd(root *rootOptions) *cobra.Command {
	var (
		algo    string
		pattern string
		text    string
		file    string
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print the 1-based position of every occurrence of a pattern",
		Example: `  search find -p "eyes" --algo bm
  search find -p GATTACA -f genome.txt --algo all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer util.TimeThis(util.Msg("find"))

			data, err := loadText(cmd, text, file)
			if err != nil {
				return err
			}
			searchers, err := pickSearchers(algo, root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range searchers {
				res, err := s.Match(data, []byte(pattern))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d matches %v (%d comparisons)\n",
					s, len(res.Positions), res.Positions, res.Comparisons)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "all", "Algorithm: naive, kmp, bm, rk or all")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Pattern to search for")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to search (default: a built-in sonnet)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
	_ = cmd.MarkFlagRequired("pattern")
	cmd.MarkFlagsMutuallyExclusive("text", "file")

	return cmd
}

func loadText(cmd *cobra.Command, text, file string) ([]byte, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read text file")
		}
		return data, nil
	case cmd.Flags().Changed("text"):
		return []byte(text), nil
	}
	return []byte(sonnet55), nil
}

func pickSearchers(algo string, root *rootOptions) ([]search.Searcher, error) {
	if algo == "all" {
		return search.All(search.WithLogger(root.log)), nil
	}
	s, err := search.Lookup(algo, search.WithLogger(root.log))
	if err != nil {
		return nil, err
	}
	return []search.Searcher{s}, nil
}

var sonnet55 = `Not marble nor the gilded monuments
Of princes shall outlive this powerful rhyme;
But you shall shine more bright in these contents
Than unswept stone, besmear'd with sluttish time.
When wasteful war shall statues overturn,
And broils root out the work of masonry,
Nor Mars his sword nor war's quick fire shall burn
The living record of your memory.
'Gainst death and all-oblivious enmity
Shall you pace forth; your praise shall still find room,
Even in the eyes of all posterity
That wear this world out to the ending doom.
    So, till the judgment that yourself arise,
    You live in this, and dwell in lovers' eyes.`
