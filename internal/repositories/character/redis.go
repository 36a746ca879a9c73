package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/clock"
	redisclient "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/redis"
)

const (
	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errCampaignIDEmpty  = "campaign ID cannot be empty"
)

// campaignIndexKey is the set of character IDs filed under a campaign,
// "character:campaign:<id>".
func campaignIndexKey(campaignID string) string {
	return entities.EntityTypeCharacter + ":" + entities.Key(entities.CampaignRef(campaignID))
}

// record is the stored shape: the canonical character plus its campaign link
type record struct {
	entities.Character
	CampaignID string `json:"campaignId,omitempty"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := entities.Key(input.Character)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	if input.Character.CreatedAt.IsZero() {
		input.Character.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(record{Character: *input.Character, CampaignID: input.CampaignID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.CampaignID != "" {
		pipe.SAdd(ctx, campaignIndexKey(input.CampaignID), input.Character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "stored character",
		"character_id", input.Character.ID,
		"campaign_id", input.CampaignID)

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, entities.Key(entities.CharacterRef(input.ID))).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var rec record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &GetOutput{Character: &rec.Character, CampaignID: rec.CampaignID}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// Get character to find its campaign index
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, entities.Key(entities.CharacterRef(input.ID)))
	if getOutput.CampaignID != "" {
		pipe.SRem(ctx, campaignIndexKey(getOutput.CampaignID), input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByCampaignID(
	ctx context.Context,
	input ListByCampaignIDInput,
) (*ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	indexKey := campaignIndexKey(input.CampaignID)
	slog.DebugContext(ctx, "listing characters by campaign index",
		"campaign_id", input.CampaignID,
		"index_key", indexKey)

	characterIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get character IDs from Redis",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}
	sort.Strings(characterIDs)

	characters := make([]*entities.Character, 0, len(characterIDs))
	for _, id := range characterIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// If character doesn't exist, clean up the index
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		characters = append(characters, getOutput.Character)
	}

	slog.DebugContext(ctx, "successfully listed characters by campaign",
		"campaign_id", input.CampaignID,
		"count", len(characters))

	return &ListByCampaignIDOutput{Characters: characters}, nil
}
