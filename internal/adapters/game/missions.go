package game

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/owdragon-cli/internal/domain"
)

func (c *Client) ListMissions(ctx context.Context, token string, category domain.MissionCategory) ([]domain.Mission, error) {
	data, err := c.post(ctx, pathQueryMission, c.api.MissionReferer, token, c.requestTimeout, map[string]any{
		"jwt":   token,
		"query": category,
	})
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return []domain.Mission{}, nil
	}

	var missions []domain.Mission
	if err := json.Unmarshal(data, &missions); err != nil {
		return nil, fmt.Errorf("%s: decode %s missions: %w: %w", pathQueryMission, category, domain.ErrMalformedResponse, err)
	}
	for i := range missions {
		missions[i].Category = category
	}

	return missions, nil
}

// SubmitMission sends value as the mission answer.
func (c *Client) SubmitMission(ctx context.Context, token string, id domain.MissionID, category domain.MissionCategory, value string) error {
	_, err := c.post(ctx, pathSubmitMission, c.api.MissionReferer, token, c.requestTimeout, map[string]any{
		"jwt":        token,
		"mission_id": id,
		"tab":        category,
		"value":      value,
	})
	return err
}

func (c *Client) FinishMission(ctx context.Context, token string, id domain.MissionID, category domain.MissionCategory) error {
	_, err := c.post(ctx, pathFinishMission, c.api.MissionReferer, token, c.requestTimeout, map[string]any{
		"jwt":        token,
		"mission_id": id,
		"tab":        category,
	})
	return err
}
