package pgyclient

import (
	"context"
	"fmt"
	"net/http"
)

// GetDataSummary busca o resumo de dados do blogueiro. O parâmetro business
// distingue notas diárias (0) de notas de cooperação (1).
func (c *PGYClient) GetDataSummary(ctx context.Context, userID string, business int, cookies string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/api/pgy/kol/data/data_summary?userId=%s&business=%d", c.baseURL, userID, business)

	raw, err := c.doRequest(ctx, http.MethodGet, requestURL, nil, cookies)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}
