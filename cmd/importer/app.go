package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/config"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/orchestrators/importer"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/clock"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/idgen"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/redis"
	campaignrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/campaign"
	characterrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/character"
	importersvc "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer"
)

// app wires the import service to its Redis-backed stores
type app struct {
	importer   importersvc.Service
	characters characterrepo.Repository
	campaigns  campaignrepo.Repository
	client     redis.Client
}

func newApp(cfg *config.Config) (*app, error) {
	client, err := redis.NewClientFromURL(cfg.RedisURL, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid REDIS_URL")
	}

	clk := clock.New()
	campaigns, err := campaignrepo.NewRedis(&campaignrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create campaign repository")
	}
	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character repository")
	}

	svc, err := importer.New(&importer.Config{
		CharacterIDGenerator: idgen.NewUUID(cfg.IDPrefix),
		CampaignIDGenerator:  idgen.NewUUID(cfg.CampaignIDPrefix),
		Clock:                clk,
		CampaignRepo:         campaigns,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create importer")
	}

	return &app{
		importer:   svc,
		characters: characters,
		campaigns:  campaigns,
		client:     client,
	}, nil
}

func (a *app) Close() error {
	return a.client.Close()
}

// loadApp reads config and builds the app for a command run
func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid configuration")
	}
	return newApp(cfg)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 // path is the user's own argument
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFoundf("file %s not found", path)
		}
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}

// rejected prints the import errors and returns an InvalidArgument error
// so the process exits non-zero.
func rejected(w io.Writer, what string, errs errors.ImportErrors) error {
	if err := writeJSON(w, map[string]any{"errors": errs}); err != nil {
		return err
	}
	return errors.InvalidArgument(fmt.Sprintf("%s import rejected with %d error(s)", what, len(errs)))
}
