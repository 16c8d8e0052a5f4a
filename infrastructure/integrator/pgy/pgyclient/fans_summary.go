package pgyclient

import (
	"context"
	"fmt"
	"net/http"
)

// GetFansSummary busca os indicadores agregados de fãs do blogueiro.
func (c *PGYClient) GetFansSummary(ctx context.Context, userID, cookies string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/api/solar/kol/data_v3/fans_summary?userId=%s", c.baseURL, userID)

	raw, err := c.doRequest(ctx, http.MethodGet, requestURL, nil, cookies)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}
