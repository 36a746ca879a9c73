package campaign

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	redisclient "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/redis"
)

const (
	// campaignIndexKey holds every stored campaign ID
	campaignIndexKey = entities.EntityTypeCampaign + ":index"

	// Error messages
	errCampaignNil     = "campaign cannot be nil"
	errCampaignIDEmpty = "campaign ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis campaign repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed campaign repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign data")
	}

	// SETNX keeps the existence check and the write atomic
	key := entities.Key(input.Campaign)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create campaign")
	}
	if !created {
		return nil, errors.AlreadyExistsf("campaign with ID %s already exists", input.Campaign.ID)
	}

	if err := r.client.SAdd(ctx, campaignIndexKey, input.Campaign.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index campaign")
	}

	slog.DebugContext(ctx, "stored campaign",
		"campaign_id", input.Campaign.ID,
		"characters", len(input.Campaign.Characters),
		"sessions", len(input.Campaign.Sessions))

	return &CreateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	result, err := r.client.Get(ctx, entities.Key(entities.CampaignRef(input.ID))).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get campaign")
	}

	var c entities.Campaign
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal campaign data")
	}

	return &GetOutput{Campaign: &c}, nil
}

func (r *redisRepository) Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	n, err := r.client.Exists(ctx, entities.Key(entities.CampaignRef(input.ID))).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	return &ExistsOutput{Exists: n > 0}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, campaignIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list campaign index")
	}
	sort.Strings(ids)

	campaigns := make([]*entities.Campaign, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "campaign not found, cleaning up index",
					"campaign_id", id)
				r.client.SRem(ctx, campaignIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get campaign %s", id)
		}
		campaigns = append(campaigns, out.Campaign)
	}

	return &ListOutput{Campaigns: campaigns}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, entities.Key(entities.CampaignRef(input.ID)))
	pipe.SRem(ctx, campaignIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete campaign")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
