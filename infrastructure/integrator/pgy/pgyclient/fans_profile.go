package pgyclient

import (
	"context"
	"fmt"
	"net/http"
)

// GetFansProfile busca o retrato demográfico dos fãs do blogueiro.
func (c *PGYClient) GetFansProfile(ctx context.Context, userID, cookies string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/api/solar/kol/data/%s/fans_profile", c.baseURL, userID)

	raw, err := c.doRequest(ctx, http.MethodGet, requestURL, nil, cookies)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}
