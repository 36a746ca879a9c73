package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	characterrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/character"
	importersvc "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer"
)

var (
	characterFormat   string
	characterSave     bool
	characterCampaign string
)

var characterCmd = &cobra.Command{
	Use:   "character <file>",
	Short: "Import one character sheet",
	Long: `Import one character sheet and print the canonical character as JSON.
The format is detected from the file extension unless --format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		return importCharacterFile(cmd.Context(), a, cmd.OutOrStdout(), args[0], characterOptions{
			Format:     characterFormat,
			Save:       characterSave,
			CampaignID: characterCampaign,
		})
	},
}

func init() {
	characterCmd.Flags().StringVarP(&characterFormat, "format", "f", "",
		"source format: "+strings.Join(formatNames(), ", "))
	characterCmd.Flags().BoolVar(&characterSave, "save", false, "store the imported character in Redis")
	characterCmd.Flags().StringVar(&characterCampaign, "campaign", "", "campaign ID to file the saved character under")
}

type characterOptions struct {
	Format     string
	Save       bool
	CampaignID string
}

func importCharacterFile(ctx context.Context, a *app, w io.Writer, path string, opts characterOptions) error {
	format := formats.FormatUnknown
	if opts.Format != "" {
		f, ok := formats.ParseFormat(opts.Format)
		if !ok {
			return errors.InvalidArgumentf("unknown format %q, want one of %s",
				opts.Format, strings.Join(formatNames(), ", "))
		}
		format = f
	}
	if opts.CampaignID != "" && !opts.Save {
		return errors.InvalidArgument("--campaign requires --save")
	}

	raw, err := readSource(path)
	if err != nil {
		return err
	}

	out, err := a.importer.ImportCharacter(ctx, &importersvc.ImportCharacterInput{
		Raw:      raw,
		Format:   format,
		Filename: path,
	})
	if err != nil {
		return err
	}
	if len(out.Errors) > 0 {
		return rejected(w, "character", out.Errors)
	}

	if opts.Save {
		if _, err := a.characters.Create(ctx, characterrepo.CreateInput{
			Character:  out.Character,
			CampaignID: opts.CampaignID,
		}); err != nil {
			return errors.Wrap(err, "failed to save character")
		}
		slog.InfoContext(ctx, "saved character",
			"character_id", out.Character.ID,
			"campaign_id", opts.CampaignID)
	}

	return writeJSON(w, out.Character)
}

func formatNames() []string {
	all := formats.Formats()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.String()
	}
	return names
}
