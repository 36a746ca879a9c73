package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	campaignrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/campaign"
	characterrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/character"
	importersvc "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer"
)

var campaignSave bool

var campaignCmd = &cobra.Command{
	Use:   "campaign <file>",
	Short: "Import a campaign JSON document",
	Long: `Import a campaign with its characters and sessions. A campaign whose id is
already stored is imported as a copy with a new id and "(imported)" appended
to its title.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		return importCampaignFile(cmd.Context(), a, cmd.OutOrStdout(), args[0], campaignSave)
	},
}

func init() {
	campaignCmd.Flags().BoolVar(&campaignSave, "save", false, "store the campaign and its characters in Redis")
}

func importCampaignFile(ctx context.Context, a *app, w io.Writer, path string, save bool) error {
	raw, err := readSource(path)
	if err != nil {
		return err
	}

	out, err := a.importer.ImportCampaign(ctx, &importersvc.ImportCampaignInput{Raw: raw})
	if err != nil {
		return err
	}
	if len(out.Errors) > 0 {
		return rejected(w, "campaign", out.Errors)
	}

	if save {
		c := out.Campaign
		if _, err := a.campaigns.Create(ctx, campaignrepo.CreateInput{Campaign: c}); err != nil {
			return errors.Wrap(err, "failed to save campaign")
		}
		for i := range c.Characters {
			if _, err := a.characters.Create(ctx, characterrepo.CreateInput{
				Character:  &c.Characters[i],
				CampaignID: c.ID,
			}); err != nil {
				return errors.Wrapf(err, "failed to save character %s", c.Characters[i].ID)
			}
		}
		slog.InfoContext(ctx, "saved campaign",
			"campaign_id", c.ID,
			"renamed", out.Renamed,
			"characters", len(c.Characters))
	}

	return writeJSON(w, out.Campaign)
}
