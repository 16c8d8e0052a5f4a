package pgyclient

import (
	"context"
	"fmt"
	"net/http"
)

// GetBloggerInfo busca os dados cadastrais do blogueiro.
func (c *PGYClient) GetBloggerInfo(ctx context.Context, userID, cookies string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/api/solar/cooperator/user/blogger/%s", c.baseURL, userID)

	raw, err := c.doRequest(ctx, http.MethodGet, requestURL, nil, cookies)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}
