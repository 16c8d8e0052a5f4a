package pgyclient

import (
	"context"
	"fmt"
	"net/http"

	pgydomain "github.com/vfg2006/kol-collector-api/infrastructure/integrator/pgy/domain"
)

// GetNotesRate busca as métricas de taxa das notas para uma combinação de
// parâmetros de desempenho.
func (c *PGYClient) GetNotesRate(ctx context.Context, userID string, params pgydomain.PerformanceParams, cookies string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf(
		"%s/api/solar/kol/data_v3/notes_rate?userId=%s&business=%d&noteType=%d&dateType=%d&advertiseSwitch=%d",
		c.baseURL,
		userID,
		params.Business,
		params.NoteType,
		params.DateType,
		params.AdvertiseSwitch,
	)

	raw, err := c.doRequest(ctx, http.MethodGet, requestURL, nil, cookies)
	if err != nil {
		return nil, err
	}

	return decodePayload(raw)
}
